package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
)

// MediaStore persists uploaded media and returns a public URL for it
type MediaStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// MediaService accepts uploads on behalf of products and posts
type MediaService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

type mediaService struct {
	store MediaStore
}

// NewMediaService creates a new MediaService
func NewMediaService(store MediaStore) MediaService {
	return &mediaService{store: store}
}

// Upload stores the file as-is. Content type and size are not inspected.
func (s *mediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	url, err := s.store.Save(ctx, fileHeader.Filename, src)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return url, nil
}
