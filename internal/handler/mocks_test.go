package handler

import (
	"context"
	"mime/multipart"

	"clothing_market/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *mockProductService) RecordPurchaseIntent(ctx context.Context, req model.PurchaseIntentRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockPostService struct{ mock.Mock }

func (m *mockPostService) ListPosts(ctx context.Context) ([]model.SocialPost, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]model.SocialPost)
	return posts, args.Error(1)
}

func (m *mockPostService) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.SocialPost, error) {
	args := m.Called(ctx, req)
	post, _ := args.Get(0).(*model.SocialPost)
	return post, args.Error(1)
}

func (m *mockPostService) LikePost(ctx context.Context, postID string) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

type mockMediaService struct{ mock.Mock }

func (m *mockMediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, fileHeader.Filename)
	return args.String(0), args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
