package repository

import (
	"context"
	"errors"
	"fmt"

	"clothing_market/internal/config"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
// pgxmock.PgxPoolIface satisfies it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// ReferenceError reports which foreign reference was missing on insert
type ReferenceError struct {
	Ref string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrReferenceNotFound, e.Ref)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

var constraintRefs = map[string]string{
	config.FKProductSeller: "seller",
	config.FKIntentProduct: "product",
	config.FKIntentUser:    "user",
	config.FKPostAuthor:    "author",
}

// translateError turns constraint violations into repository errors
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		ref, ok := constraintRefs[pgErr.ConstraintName]
		if !ok {
			ref = pgErr.ConstraintName
		}
		return &ReferenceError{Ref: ref}
	}
	return err
}
