package repositories

import (
	"context"
	"fmt"

	"tasklist/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMListRepository is a GORM implementation of ListRepository.
type GORMListRepository struct {
	db *gorm.DB
}

// NewGORMListRepository creates a new instance of GORMListRepository.
func NewGORMListRepository(db *gorm.DB) *GORMListRepository {
	return &GORMListRepository{
		db: db,
	}
}

func (r *GORMListRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.List, error) {
	lists := []models.List{}
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id desc").
		Find(&lists).Error
	if err != nil {
		return nil, translate(err, "failed to list lists")
	}
	return lists, nil
}

func (r *GORMListRepository) GetByID(ctx context.Context, id, authorID uint) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&list).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("failed to get list %d", id))
	}
	return &list, nil
}

// GetWithTasks loads the list together with all of its tasks.
func (r *GORMListRepository) GetWithTasks(ctx context.Context, id, authorID uint) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id desc")
		}).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&list).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("failed to get list %d", id))
	}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}
	return &list, nil
}

func (r *GORMListRepository) Create(ctx context.Context, list *models.List) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(list).Error; err != nil {
		return translate(err, "failed to create list")
	}
	return nil
}

func (r *GORMListRepository) Update(ctx context.Context, list *models.List) error {
	res := r.db.WithContext(ctx).
		Select("*").
		Omit(clause.Associations).
		Where("author_id = ?", list.AuthorID).
		Updates(list)
	if res.Error != nil {
		return translate(res.Error, "failed to update list")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWithTasks deletes child tasks and then the list inside one
// transaction, so a failure cannot leave orphaned tasks behind.
func (r *GORMListRepository) DeleteWithTasks(ctx context.Context, id, authorID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.List
		if err := tx.Where("id = ? AND author_id = ?", id, authorID).First(&list).Error; err != nil {
			return translate(err, fmt.Sprintf("failed to get list %d", id))
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.Task{}).Error; err != nil {
			return translate(err, "failed to delete list tasks")
		}
		if err := tx.Delete(&models.List{}, "id = ?", list.ID).Error; err != nil {
			return translate(err, "failed to delete list")
		}
		return nil
	})
}
