package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"clothing_market/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewPostRepository(mock)
	now := time.Now()
	p := &model.SocialPost{ID: "01S", Text: "new jeans!", Author: model.UserRef{ID: "01U"}, CreatedAt: now}

	mock.ExpectQuery("INSERT INTO social_posts").
		WithArgs("01S", "01U", "new jeans!", "", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"username", "likes", "created_at"}).AddRow("ana", 0, now))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, "ana", p.Author.Username)
	assert.Equal(t, 0, p.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_UnknownAuthor(t *testing.T) {
	mock := newMock(t)
	repo := NewPostRepository(mock)

	mock.ExpectQuery("INSERT INTO social_posts").
		WithArgs("01S", "ghost", "hi", "", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_social_posts_author"})

	err := repo.Create(context.Background(), &model.SocialPost{ID: "01S", Text: "hi", Author: model.UserRef{ID: "ghost"}})

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "author", refErr.Ref)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindAll_NewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewPostRepository(mock)
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	rows := pgxmock.NewRows([]string{"id", "text", "image_url", "likes", "created_at", "author_id", "username"}).
		AddRow("02S", "second", "", 4, newer, "01U", "ana").
		AddRow("01S", "first", "img", 0, older, "02U", "bo")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.created_at DESC, p.id DESC")).WillReturnRows(rows)

	posts, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "02S", posts[0].ID)
	assert.Equal(t, 4, posts[0].Likes)
	assert.Equal(t, "bo", posts[1].Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_IncrementLikes_IsSingleAtomicUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewPostRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE social_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes")).
		WithArgs("01S").
		WillReturnRows(pgxmock.NewRows([]string{"likes"}).AddRow(5))

	likes, err := repo.IncrementLikes(context.Background(), "01S")
	require.NoError(t, err)
	assert.Equal(t, 5, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_IncrementLikes_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPostRepository(mock)

	mock.ExpectQuery("UPDATE social_posts").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.IncrementLikes(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
