package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clothing_market/internal/model"
	"clothing_market/internal/repository"
	"clothing_market/internal/utils"
)

// ProductService covers the catalog and purchase intents
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	RecordPurchaseIntent(ctx context.Context, req model.PurchaseIntentRequest) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CreateProduct publishes a listing. The seller must exist; its role is not checked.
func (s *productService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		return nil, invalid("title is required")
	case req.Price == nil:
		return nil, invalid("price is required")
	case strings.TrimSpace(req.ImageURL) == "":
		return nil, invalid("imageUrl is required")
	case strings.TrimSpace(req.Seller) == "":
		return nil, invalid("seller is required")
	}

	product := &model.Product{
		ID:          utils.NewID(),
		Title:       title,
		Price:       *req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Seller:      model.UserRef{ID: req.Seller},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if nf, ok := missingReference(err); ok {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

// RecordPurchaseIntent stores an interest record for productId by userId
func (s *productService) RecordPurchaseIntent(ctx context.Context, req model.PurchaseIntentRequest) error {
	switch {
	case strings.TrimSpace(req.ProductID) == "":
		return invalid("productId is required")
	case strings.TrimSpace(req.UserID) == "":
		return invalid("userId is required")
	}

	intent := &model.PurchaseIntent{
		ID:        utils.NewID(),
		ProductID: req.ProductID,
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreatePurchaseIntent(ctx, intent); err != nil {
		if nf, ok := missingReference(err); ok {
			return nf
		}
		return fmt.Errorf("failed to record purchase intent: %w", err)
	}
	return nil
}
