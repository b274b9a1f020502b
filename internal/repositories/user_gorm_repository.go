package repositories

import (
	"context"
	"fmt"

	"tasklist/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return translate(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("failed to get user by ID %d", id))
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err, "failed to get user by email")
	}
	return &user, nil
}

func (r *GORMUserRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "failed to check email")
	}
	return count > 0, nil
}

// Update writes every column of an existing user.
func (r *GORMUserRepository) Update(ctx context.Context, user *models.User) error {
	res := r.db.WithContext(ctx).Select("*").Omit(clause.Associations).Updates(user)
	if res.Error != nil {
		return translate(res.Error, "failed to update user")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCascade deletes tasks, lists and settings before the user row so the
// RESTRICT foreign keys never fire. Any failure rolls everything back.
func (r *GORMUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return translate(err, "failed to delete user tasks")
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.List{}).Error; err != nil {
			return translate(err, "failed to delete user lists")
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserSettings{}).Error; err != nil {
			return translate(err, "failed to delete user settings")
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return translate(res.Error, "failed to delete user")
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
