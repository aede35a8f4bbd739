package handlers

import (
	"net/http"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services"
	"prizm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	*BaseHandler
	campaignService *services.CampaignService
	favoriteService *services.FavoriteService
}

func NewCampaignHandler(base *BaseHandler, campaignService *services.CampaignService, favoriteService *services.FavoriteService) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:     base,
		campaignService: campaignService,
		favoriteService: favoriteService,
	}
}

func (h *CampaignHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/campaigns")
	{
		public.GET("", h.SearchCampaigns)
		public.GET("/recommended", h.GetRecommendedCampaigns)
		public.GET("/:campaignId", h.GetCampaign)
	}

	// Company routes
	company := r.Group("/campaigns")
	company.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin))
	{
		company.POST("", h.CreateCampaign)
		company.GET("/my", h.GetMyCampaigns)
		company.PUT("/:campaignId", h.UpdateCampaign)
		company.DELETE("/:campaignId", h.DeleteCampaign)
		company.PUT("/:campaignId/status", h.UpdateCampaignStatus)
	}

	// Influencer routes
	influencer := r.Group("/campaigns")
	influencer.Use(middleware.AuthMiddleware())
	{
		influencer.POST("/:campaignId/favorite", h.ToggleFavorite)
	}

	favorites := r.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("", h.GetFavorites)
	}

	admin := r.Group("/admin/campaigns")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.AdminListCampaigns)
	}
}

// --- Public handlers ---

func (h *CampaignHandler) SearchCampaigns(c *gin.Context) {
	var criteria dto.CampaignSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	campaigns, total, err := h.campaignService.Search(&criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  campaigns,
		"total": total,
		"page":  criteria.Page,
	})
}

func (h *CampaignHandler) GetRecommendedCampaigns(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 10)

	campaigns, err := h.campaignService.Recommended(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaigns})
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignService.Get(c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaign})
}

// --- Company handlers ---

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Create(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": campaign})
}

func (h *CampaignHandler) GetMyCampaigns(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignService.ListForCompany(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Update(principal, c.Param("campaignId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	if err := h.campaignService.Delete(principal, c.Param("campaignId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req struct {
		Status models.CampaignStatus `json:"status" validate:"required"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.SetStatus(principal, c.Param("campaignId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaign})
}

// --- Admin handlers ---

func (h *CampaignHandler) AdminListCampaigns(c *gin.Context) {
	criteria := repositories.CampaignSearchCriteria{
		Query:     c.Query("q"),
		CompanyID: c.Query("company_id"),
		Status:    models.CampaignStatus(c.Query("status")),
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	campaigns, total, err := h.campaignService.ListAll(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  campaigns,
		"total": total,
		"page":  criteria.Page,
	})
}

// --- Favorite handlers ---

func (h *CampaignHandler) ToggleFavorite(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req struct {
		InfluencerProfileID string `json:"influencer_profile_id" validate:"omitempty,uuid"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.favoriteService.Toggle(principal, req.InfluencerProfileID, c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) GetFavorites(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	campaigns, err := h.favoriteService.List(principal, c.Query("profile_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": campaigns})
}
