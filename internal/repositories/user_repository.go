package repositories

import (
	"context"

	"tasklist/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailTaken reports whether another user than exceptID owns email.
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	Update(ctx context.Context, user *models.User) error
	// DeleteCascade removes the user with all tasks, lists and settings
	// atomically.
	DeleteCascade(ctx context.Context, id uint) error
}
