package repositories

import (
	"context"

	"tasklist/internal/models"
)

// ListRepository defines the interface for list data access. Every lookup is
// scoped to the author.
type ListRepository interface {
	ListByAuthor(ctx context.Context, authorID uint) ([]models.List, error)
	GetByID(ctx context.Context, id, authorID uint) (*models.List, error)
	GetWithTasks(ctx context.Context, id, authorID uint) (*models.List, error)
	Create(ctx context.Context, list *models.List) error
	Update(ctx context.Context, list *models.List) error
	// DeleteWithTasks removes the list and its tasks atomically.
	DeleteWithTasks(ctx context.Context, id, authorID uint) error
}
