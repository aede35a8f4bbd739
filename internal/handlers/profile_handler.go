package handlers

import (
	"net/http"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/models"
	"prizm_backend/internal/services"
	"prizm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public influencer directory
	public := r.Group("/influencers")
	{
		public.GET("", h.ListInfluencers)
		public.GET("/:profileId", h.GetInfluencer)
	}

	company := r.Group("/companies")
	company.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany))
	{
		company.GET("/me", h.GetMyCompany)
		company.PUT("/me", h.UpdateMyCompany)
	}

	influencer := r.Group("/influencers")
	influencer.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleInfluencer))
	{
		influencer.GET("/me/profile", h.GetMyInfluencerProfile)
		influencer.PUT("/me/profile", h.UpdateMyInfluencerProfile)
	}

	admin := r.Group("/admin/companies")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListCompanies)
	}
}

func (h *ProfileHandler) ListInfluencers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	profiles, total, err := h.profileService.ListInfluencers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  profiles,
		"total": total,
		"page":  page,
	})
}

func (h *ProfileHandler) GetInfluencer(c *gin.Context) {
	profile, err := h.profileService.GetInfluencer(c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (h *ProfileHandler) GetMyCompany(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	company, err := h.profileService.GetMyCompany(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (h *ProfileHandler) UpdateMyCompany(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.profileService.UpdateMyCompany(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (h *ProfileHandler) GetMyInfluencerProfile(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyInfluencerProfile(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (h *ProfileHandler) UpdateMyInfluencerProfile(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateInfluencerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateMyInfluencerProfile(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (h *ProfileHandler) ListCompanies(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	companies, total, err := h.profileService.ListCompanies(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  companies,
		"total": total,
		"page":  page,
	})
}
