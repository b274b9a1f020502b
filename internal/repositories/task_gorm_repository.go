package repositories

import (
	"context"
	"fmt"

	"tasklist/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// ListByAuthor returns the author's tasks, newest id first.
func (r *GORMTaskRepository) ListByAuthor(ctx context.Context, authorID uint, filter models.TaskFilter) ([]models.Task, error) {
	q := r.db.WithContext(ctx).Where("author_id = ?", authorID)
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", string(*filter.Priority))
	}
	if filter.ListID != nil {
		q = q.Where("list_id = ?", *filter.ListID)
	}
	if filter.Archived != nil {
		q = q.Where("archived = ?", *filter.Archived)
	}

	tasks := []models.Task{}
	if err := q.Order("id desc").Find(&tasks).Error; err != nil {
		return nil, translate(err, "failed to list tasks")
	}
	return tasks, nil
}

func (r *GORMTaskRepository) GetByID(ctx context.Context, id, authorID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&task).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("failed to get task %d", id))
	}
	return &task, nil
}

func (r *GORMTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return translate(err, "failed to create task")
	}
	return nil
}

// Update writes every column of the task, matching on id and author.
func (r *GORMTaskRepository) Update(ctx context.Context, task *models.Task) error {
	res := r.db.WithContext(ctx).
		Select("*").
		Where("author_id = ?", task.AuthorID).
		Updates(task)
	if res.Error != nil {
		return translate(res.Error, "failed to update task")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GORMTaskRepository) Delete(ctx context.Context, id, authorID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ? AND author_id = ?", id, authorID)
	if res.Error != nil {
		return translate(res.Error, "failed to delete task")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
