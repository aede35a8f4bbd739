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

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
	statusService      *services.StatusService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService, statusService *services.StatusService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		statusService:      statusService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("/my", h.GetMyApplications)
		apps.GET("/company", h.GetCompanyApplications)
		apps.GET("/:applicationId", h.GetApplication)
		apps.PUT("/:applicationId/status", h.AdvanceStatus)
	}

	campaigns := r.Group("/campaigns")
	campaigns.Use(middleware.AuthMiddleware())
	{
		campaigns.POST("/:campaignId/applications", h.Apply)
		campaigns.GET("/:campaignId/applications", h.GetCampaignApplications)
	}

	admin := r.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAllApplications)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.CampaignID = c.Param("campaignId")

	app, err := h.applicationService.Apply(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": app})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	app, err := h.applicationService.GetByID(principal, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": app})
}

// AdvanceStatus drives the application lifecycle. The response reports the
// updated application together with the outcome of each side effect.
func (h *ApplicationHandler) AdvanceStatus(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.AdvanceStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.statusService.AdvanceStatus(principal, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":         resp.Application,
		"side_effects": resp.SideEffects,
	})
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForInfluencer(principal, c.Query("profile_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

func (h *ApplicationHandler) GetCompanyApplications(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForCompany(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

func (h *ApplicationHandler) GetCampaignApplications(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByCampaign(principal, c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

func (h *ApplicationHandler) ListAllApplications(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.AdminApplicationCriteria{
		Status:     models.ApplicationStatus(c.Query("status")),
		CampaignID: c.Query("campaign_id"),
		CompanyID:  c.Query("company_id"),
		Page:       page,
		PageSize:   pageSize,
	}

	apps, total, err := h.applicationService.ListAll(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  apps,
		"total": total,
		"page":  page,
	})
}
