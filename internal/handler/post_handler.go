package handler

import (
	"net/http"

	"clothing_market/internal/model"
	"clothing_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PostHandler handles the social feed
type PostHandler struct {
	service service.PostService
	logger  *logrus.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(s service.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{service: s, logger: logger}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": post})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	likes, err := h.service.LikePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like added", "likes": likes})
}

// RegisterPostRoutes registers feed routes
func (h *PostHandler) RegisterPostRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts", h.ListPosts)
	rg.POST("/posts", h.CreatePost)
	rg.PUT("/posts/:id/like", h.LikePost)
}
