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

type DebugReportHandler struct {
	*BaseHandler
	debugReportService *services.DebugReportService
}

func NewDebugReportHandler(base *BaseHandler, debugReportService *services.DebugReportService) *DebugReportHandler {
	return &DebugReportHandler{
		BaseHandler:        base,
		debugReportService: debugReportService,
	}
}

func (h *DebugReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Reports can be filed anonymously; the identity is attached if present.
	reports := r.Group("/debug-reports")
	reports.Use(middleware.OptionalAuthMiddleware())
	{
		reports.POST("", h.CreateReport)
	}

	admin := r.Group("/admin/debug-reports")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListReports)
		admin.PUT("/:reportId/resolve", h.ResolveReport)
	}
}

func (h *DebugReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateDebugReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reporter := h.OptionalPrincipal(c)
	report, err := h.debugReportService.Create(reporter.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": report})
}

func (h *DebugReportHandler) ListReports(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.DebugReportCriteria{
		Status:   models.DebugReportStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	reports, total, err := h.debugReportService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  reports,
		"total": total,
		"page":  page,
	})
}

func (h *DebugReportHandler) ResolveReport(c *gin.Context) {
	if err := h.debugReportService.Resolve(c.Param("reportId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"resolved": true}})
}
