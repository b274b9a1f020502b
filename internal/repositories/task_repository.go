package repositories

import (
	"context"

	"tasklist/internal/models"
)

// TaskRepository defines the interface for task data access. Every lookup is
// scoped to the author.
type TaskRepository interface {
	ListByAuthor(ctx context.Context, authorID uint, filter models.TaskFilter) ([]models.Task, error)
	GetByID(ctx context.Context, id, authorID uint) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, authorID uint) error
}
