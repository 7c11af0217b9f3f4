package repository

import (
	"context"
	"errors"
	"fmt"

	"clothing_market/internal/model"

	"github.com/jackc/pgx/v5"
)

// PostRepository defines operations for the social feed
type PostRepository interface {
	Create(ctx context.Context, post *model.SocialPost) error
	FindAll(ctx context.Context) ([]model.SocialPost, error)
	IncrementLikes(ctx context.Context, id string) (int, error)
}

type postRepository struct {
	db DBTX
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db DBTX) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post and fills in the author's username
func (r *postRepository) Create(ctx context.Context, p *model.SocialPost) error {
	sql := `WITH inserted AS (
                INSERT INTO social_posts (id, author_id, text, image_url, likes, created_at)
                VALUES ($1, $2, $3, $4, 0, $5)
                RETURNING author_id, likes, created_at
            )
            SELECT u.username, i.likes, i.created_at FROM inserted i JOIN users u ON u.id = i.author_id`
	err := r.db.QueryRow(ctx, sql, p.ID, p.Author.ID, p.Text, p.ImageURL, p.CreatedAt).
		Scan(&p.Author.Username, &p.Likes, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", translateError(err))
	}
	return nil
}

// FindAll retrieves the feed, newest first
func (r *postRepository) FindAll(ctx context.Context) ([]model.SocialPost, error) {
	sql := `SELECT p.id, p.text, p.image_url, p.likes, p.created_at, u.id, u.username
            FROM social_posts p JOIN users u ON u.id = p.author_id
            ORDER BY p.created_at DESC, p.id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []model.SocialPost{}
	for rows.Next() {
		var p model.SocialPost
		if err := rows.Scan(&p.ID, &p.Text, &p.ImageURL, &p.Likes, &p.CreatedAt, &p.Author.ID, &p.Author.Username); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

// IncrementLikes adds exactly one like in a single statement and returns the new count.
// Concurrent callers never lose an update.
func (r *postRepository) IncrementLikes(ctx context.Context, id string) (int, error) {
	sql := `UPDATE social_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`
	var likes int
	err := r.db.QueryRow(ctx, sql, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return likes, nil
}
