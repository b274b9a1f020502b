package repositories

import (
	"context"

	"tasklist/internal/models"
)

// SettingsRepository defines the interface for user settings data access.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.UserSettings, error)
	// GetOrCreate returns the user's settings, inserting defaults on first use.
	GetOrCreate(ctx context.Context, userID uint) (*models.UserSettings, error)
	Create(ctx context.Context, settings *models.UserSettings) error
	Update(ctx context.Context, settings *models.UserSettings) error
}
