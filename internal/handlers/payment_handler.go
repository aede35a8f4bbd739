package handlers

import (
	"net/http"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/models"
	"prizm_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("/my", h.GetMyPayments)
		payments.GET("/company", h.GetCompanyPayments)
	}

	admin := r.Group("/admin/payments")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAllPayments)
	}
}

func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListForInfluencer(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func (h *PaymentHandler) GetCompanyPayments(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListForCompany(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func (h *PaymentHandler) ListAllPayments(c *gin.Context) {
	if applicationID := c.Query("application_id"); applicationID != "" {
		payments, err := h.paymentService.ListByApplication(applicationID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": payments, "total": len(payments)})
		return
	}

	page, pageSize := ParsePagination(c)
	payments, total, err := h.paymentService.ListAll(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  payments,
		"total": total,
		"page":  page,
	})
}
