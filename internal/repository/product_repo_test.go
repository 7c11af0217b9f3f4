package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"clothing_market/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)
	now := time.Now()
	p := &model.Product{ID: "01P", Title: "Jacket", Price: 20, ImageURL: "u", Seller: model.UserRef{ID: "01U"}, CreatedAt: now}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("01P", "Jacket", 20.0, "", "u", "01U", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"username", "created_at"}).AddRow("ana", now))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, "ana", p.Seller.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_UnknownSeller(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("01P", "", 0.0, "", "", "ghost", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_products_seller"})

	err := repo.Create(context.Background(), &model.Product{ID: "01P", Seller: model.UserRef{ID: "ghost"}})

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "seller", refErr.Ref)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "title", "price", "description", "image_url", "created_at", "seller_id", "username"}).
		AddRow("01P", "Jacket", 20.0, "", "u", now, "01U", "ana").
		AddRow("02P", "Boots", 35.5, "worn twice", "v", now, "01U", "ana")
	mock.ExpectQuery(regexp.QuoteMeta("FROM products p JOIN users u ON u.id = p.seller_id")).WillReturnRows(rows)

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Jacket", products[0].Title)
	assert.Equal(t, model.UserRef{ID: "01U", Username: "ana"}, products[0].Seller)
	assert.Equal(t, "worn twice", products[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAll_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("FROM products").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "price", "description", "image_url", "created_at", "seller_id", "username"}))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_CreatePurchaseIntent(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectExec("INSERT INTO purchase_intents").
		WithArgs("01I", "01P", "01U", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreatePurchaseIntent(context.Background(), &model.PurchaseIntent{ID: "01I", ProductID: "01P", UserID: "01U", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreatePurchaseIntent_UnknownUser(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectExec("INSERT INTO purchase_intents").
		WithArgs("01I", "01P", "ghost", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_purchase_intents_user"})

	err := repo.CreatePurchaseIntent(context.Background(), &model.PurchaseIntent{ID: "01I", ProductID: "01P", UserID: "ghost"})

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "user", refErr.Ref)
	assert.NoError(t, mock.ExpectationsWereMet())
}
