package handler

import (
	"net/http"

	"clothing_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MediaHandler accepts image uploads
type MediaHandler struct {
	service service.MediaService
	logger  *logrus.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(s service.MediaService, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{service: s, logger: logger}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required: " + err.Error()})
		return
	}

	url, err := h.service.Upload(c.Request.Context(), file)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// RegisterMediaRoutes registers the upload route
func (h *MediaHandler) RegisterMediaRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}
