package handler

import (
	"context"
	"net/http"
	"time"

	"clothing_market/internal/middleware"
	"clothing_market/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups everything the router mounts under /api
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Post    *PostHandler
	Media   *MediaHandler
}

// NewRouter builds the gin engine: middleware, /api routes, uploaded media and the health check
func NewRouter(logger *logrus.Logger, h Handlers, uploadsDir string, db Pinger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	api := router.Group("/api")
	h.Auth.RegisterAuthRoutes(api)
	h.Product.RegisterProductRoutes(api)
	h.Post.RegisterPostRoutes(api)
	h.Media.RegisterMediaRoutes(api)

	router.Static(storage.URLPrefix, uploadsDir)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
