package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
	authService   *service.AuthService
}

func NewUploadHandler(uploadService *service.UploadService, authService *service.AuthService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		authService:   authService,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	upload := router.Group("/upload", middleware.AuthMiddleware(h.authService))
	{
		upload.POST("/image", h.UploadImage)
	}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	url, err := h.uploadService.UploadImage(c.Request.Context(), req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadImageResponse{URL: url, Message: "Image uploaded successfully"})
}
