package services

import (
	"context"
	"errors"

	"tasklist/internal/repositories"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrListNotFound       = errors.New("list not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// IsNotFound reports whether err means the entity is absent or not owned by
// the caller.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrListNotFound)
}

// notFoundAs replaces repositories.ErrNotFound with a domain error and
// passes everything else through.
func notFoundAs(err, domain error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return domain
	}
	return err
}

// requireUser checks that the acting user still exists. A valid token can
// outlive its account.
func requireUser(ctx context.Context, users repositories.UserRepository, userID uint) error {
	if _, err := users.GetByID(ctx, userID); err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}
	return nil
}
