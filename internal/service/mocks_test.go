package service

import (
	"context"
	"io"
	"time"

	"clothing_market/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) CreatePurchaseIntent(ctx context.Context, intent *model.PurchaseIntent) error {
	return m.Called(ctx, intent).Error(0)
}

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) Collect(ctx context.Context, since time.Time, topN int) (*model.ActivityReport, error) {
	args := m.Called(ctx, since, topN)
	report, _ := args.Get(0).(*model.ActivityReport)
	return report, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, subject, body string) error {
	return m.Called(ctx, subject, body).Error(0)
}

type mockMediaStore struct{ mock.Mock }

func (m *mockMediaStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, filename, string(data))
	return args.String(0), args.Error(1)
}
