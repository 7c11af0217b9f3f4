package repository

import (
	"context"
	"fmt"

	"clothing_market/internal/model"
)

// ProductRepository defines operations for listings and the interest records attached to them
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	CreatePurchaseIntent(ctx context.Context, intent *model.PurchaseIntent) error
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a product and fills in the seller's username.
// An unknown seller yields a *ReferenceError.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `WITH inserted AS (
                INSERT INTO products (id, title, price, description, image_url, seller_id, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING seller_id, created_at
            )
            SELECT u.username, i.created_at FROM inserted i JOIN users u ON u.id = i.seller_id`
	err := r.db.QueryRow(ctx, sql, p.ID, p.Title, p.Price, p.Description, p.ImageURL, p.Seller.ID, p.CreatedAt).
		Scan(&p.Seller.Username, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", translateError(err))
	}
	return nil
}

// FindAll retrieves every product with its seller expanded to the username
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT p.id, p.title, p.price, p.description, p.image_url, p.created_at, u.id, u.username
            FROM products p JOIN users u ON u.id = p.seller_id
            ORDER BY p.created_at, p.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt, &p.Seller.ID, &p.Seller.Username); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// CreatePurchaseIntent stores an interest record. Unknown product or user yields a *ReferenceError.
func (r *productRepository) CreatePurchaseIntent(ctx context.Context, intent *model.PurchaseIntent) error {
	sql := `INSERT INTO purchase_intents (id, product_id, user_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, sql, intent.ID, intent.ProductID, intent.UserID, intent.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record purchase intent: %w", translateError(err))
	}
	return nil
}
