package service

import (
	"errors"
	"fmt"

	"clothing_market/internal/repository"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = fmt.Errorf("%w: email is already registered", ErrValidation)
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrNotFound           = errors.New("not found")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

// missingReference converts a repository reference error into ErrNotFound naming the reference
func missingReference(err error) (error, bool) {
	var refErr *repository.ReferenceError
	if errors.As(err, &refErr) {
		return notFound(refErr.Ref), true
	}
	return nil, false
}
