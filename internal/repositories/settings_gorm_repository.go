package repositories

import (
	"context"
	"errors"

	"tasklist/internal/models"

	"gorm.io/gorm"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

func (r *GORMSettingsRepository) GetByUserID(ctx context.Context, userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err, "failed to get settings")
	}
	return &settings, nil
}

// GetOrCreate tolerates a concurrent first read: the unique index on user_id
// rejects the second insert and the winner's row is returned instead.
func (r *GORMSettingsRepository) GetOrCreate(ctx context.Context, userID uint) (*models.UserSettings, error) {
	settings, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	settings = models.DefaultSettings(userID)
	if err := r.Create(ctx, settings); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return r.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return settings, nil
}

func (r *GORMSettingsRepository) Create(ctx context.Context, settings *models.UserSettings) error {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return translate(err, "failed to create settings")
	}
	return nil
}

func (r *GORMSettingsRepository) Update(ctx context.Context, settings *models.UserSettings) error {
	res := r.db.WithContext(ctx).
		Select("*").
		Where("user_id = ?", settings.UserID).
		Updates(settings)
	if res.Error != nil {
		return translate(res.Error, "failed to update settings")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
