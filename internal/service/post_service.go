package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clothing_market/internal/model"
	"clothing_market/internal/repository"
	"clothing_market/internal/utils"
)

// PostService covers the social feed
type PostService interface {
	ListPosts(ctx context.Context) ([]model.SocialPost, error)
	CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.SocialPost, error)
	LikePost(ctx context.Context, postID string) (int, error)
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) ListPosts(ctx context.Context) ([]model.SocialPost, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.SocialPost, error) {
	text := strings.TrimSpace(req.Text)
	switch {
	case text == "":
		return nil, invalid("text is required")
	case strings.TrimSpace(req.Author) == "":
		return nil, invalid("author is required")
	}

	post := &model.SocialPost{
		ID:        utils.NewID(),
		Text:      text,
		ImageURL:  req.ImageURL,
		Author:    model.UserRef{ID: req.Author},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		if nf, ok := missingReference(err); ok {
			return nil, nf
		}
		return nil, fmt.Errorf("failed to create post in repo: %w", err)
	}
	return post, nil
}

// LikePost adds one anonymous like and returns the new count
func (s *postService) LikePost(ctx context.Context, postID string) (int, error) {
	likes, err := s.repo.IncrementLikes(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, notFound("post")
		}
		return 0, fmt.Errorf("failed to like post: %w", err)
	}
	return likes, nil
}
