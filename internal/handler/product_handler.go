package handler

import (
	"net/http"

	"clothing_market/internal/model"
	"clothing_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles the catalog and purchase intents
type ProductHandler struct {
	service service.ProductService
	logger  *logrus.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{service: s, logger: logger}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product published", "product": product})
}

func (h *ProductHandler) RecordPurchaseIntent(c *gin.Context) {
	var req model.PurchaseIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.RecordPurchaseIntent(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Purchase intent recorded. Thanks for your interest."})
}

// RegisterProductRoutes registers catalog routes
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.POST("/products", h.CreateProduct)
	rg.POST("/purchase-intent", h.RecordPurchaseIntent)
}
