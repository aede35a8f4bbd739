package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"prizm_backend/internal/middleware"
	"prizm_backend/internal/storage"
	"prizm_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadHandler accepts image uploads for chat attachments, campaign images
// and avatars, and serves locally stored files back.
type UploadHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewUploadHandler(base *BaseHandler, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/images", h.UploadImage)
	}

	r.GET("/files/*filePath", h.ServeFile)
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file field is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file exceeds the 10MB limit"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		apperrors.HandleError(c, apperrors.NewBadRequestError("unsupported image type: "+contentType))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	now := time.Now()
	path := fmt.Sprintf("images/%s/%s/%s%s",
		principal.UserID, now.Format("2006-01"), uuid.NewString(), ext)

	ctx := c.Request.Context()
	if err := h.storage.Save(ctx, path, file, contentType); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	url, err := h.storage.GetURL(ctx, path)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"path": path,
		"url":  url,
	}})
}

// ServeFile streams a stored object. Only used with local storage; bucket
// backends serve files from their own public URLs.
func (h *UploadHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filePath"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid file path"))
		return
	}

	ctx := c.Request.Context()
	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer reader.Close()

	ext := filepath.Ext(path)
	for contentType, e := range allowedImageTypes {
		if e == ext {
			c.Header("Content-Type", contentType)
			break
		}
	}
	if _, err := io.Copy(c.Writer, reader); err != nil {
		return
	}
}
