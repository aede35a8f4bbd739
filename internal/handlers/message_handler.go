package handlers

import (
	"net/http"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/services"
	"prizm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService *services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/applications/:applicationId/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.GetThread)
		messages.POST("", h.SendMessage)
	}

	unread := r.Group("/messages")
	unread.Use(middleware.AuthMiddleware())
	{
		unread.GET("/unread-count", h.UnreadCount)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	messages, err := h.messageService.SendMessage(principal, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// The primary row is first; extra image rows follow it.
	c.JSON(http.StatusCreated, gin.H{
		"data":     messages[0],
		"messages": messages,
	})
}

func (h *MessageHandler) GetThread(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	thread, err := h.messageService.GetThread(principal, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": thread})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	count, err := h.messageService.UnreadCount(principal.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"unread": count}})
}
