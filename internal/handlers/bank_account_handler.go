package handlers

import (
	"net/http"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/models"
	"prizm_backend/internal/services"
	"prizm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BankAccountHandler struct {
	*BaseHandler
	bankAccountService *services.BankAccountService
}

func NewBankAccountHandler(base *BaseHandler, bankAccountService *services.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{
		BaseHandler:        base,
		bankAccountService: bankAccountService,
	}
}

func (h *BankAccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/bank-account")
	accounts.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleInfluencer))
	{
		accounts.GET("", h.GetBankAccount)
		accounts.PUT("", h.UpsertBankAccount)
	}
}

func (h *BankAccountHandler) GetBankAccount(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	account, err := h.bankAccountService.Get(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func (h *BankAccountHandler) UpsertBankAccount(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpsertBankAccountRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.bankAccountService.Upsert(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}
