package repository

import (
	"context"
	"fmt"
	"time"

	"clothing_market/internal/model"
)

// StatsRepository reads the counters behind the activity report
type StatsRepository interface {
	Collect(ctx context.Context, since time.Time, topN int) (*model.ActivityReport, error)
}

type statsRepository struct {
	db DBTX
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DBTX) StatsRepository {
	return &statsRepository{db: db}
}

// Collect counts totals and records created at or after since,
// plus the topN products by purchase intents in that window.
func (r *statsRepository) Collect(ctx context.Context, since time.Time, topN int) (*model.ActivityReport, error) {
	report := &model.ActivityReport{Since: since, TopProducts: []model.ProductInterest{}}

	countSQL := `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM users WHERE created_at >= $1),
            (SELECT COUNT(*) FROM products),
            (SELECT COUNT(*) FROM products WHERE created_at >= $1),
            (SELECT COUNT(*) FROM purchase_intents WHERE created_at >= $1),
            (SELECT COUNT(*) FROM social_posts WHERE created_at >= $1)`
	err := r.db.QueryRow(ctx, countSQL, since).Scan(
		&report.TotalUsers, &report.NewUsers,
		&report.TotalProducts, &report.NewProducts,
		&report.NewIntents, &report.NewPosts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}

	topSQL := `
        SELECT p.id, p.title, COUNT(i.id) AS intents
        FROM purchase_intents i JOIN products p ON p.id = i.product_id
        WHERE i.created_at >= $1
        GROUP BY p.id, p.title
        ORDER BY intents DESC, p.id
        LIMIT $2`
	rows, err := r.db.Query(ctx, topSQL, since, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pi model.ProductInterest
		if err := rows.Scan(&pi.ProductID, &pi.Title, &pi.Intents); err != nil {
			return nil, fmt.Errorf("failed to scan top product row: %w", err)
		}
		report.TopProducts = append(report.TopProducts, pi)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top product rows: %w", err)
	}
	return report, nil
}
