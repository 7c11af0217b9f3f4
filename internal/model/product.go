package model

import "time"

// Product is a listing offered by a seller
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Seller      UserRef   `json:"seller"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProductRequest is used for publishing a new listing.
// Price is a pointer so that an explicit 0 is accepted while a missing price is not.
type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Seller      string   `json:"seller" binding:"required"`
}

// PurchaseIntent records that a user is interested in buying a product.
// It is written by the API and only read back by the activity report.
type PurchaseIntent struct {
	ID        string
	ProductID string
	UserID    string
	CreatedAt time.Time
}

type PurchaseIntentRequest struct {
	ProductID string `json:"productId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}
