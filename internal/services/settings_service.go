package services

import (
	"context"
	"errors"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// SettingsService manages the single settings row of each user.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	userRepo     repositories.UserRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, userRepo repositories.UserRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// Get returns the user's settings, creating defaults on first access.
func (s *SettingsService) Get(ctx context.Context, userID uint) (*models.UserSettings, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.settingsRepo.GetOrCreate(ctx, userID)
}

// Update patches the settings. When none exist yet the patch is applied on
// top of the defaults and inserted.
func (s *SettingsService) Update(ctx context.Context, userID uint, patch models.SettingsPatch) (*models.UserSettings, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		settings = models.DefaultSettings(userID)
		patch.Apply(settings)
		err = s.settingsRepo.Create(ctx, settings)
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			if err != nil {
				return nil, err
			}
			return settings, nil
		}
		// a concurrent request created the row first; patch that one
		settings, err = s.settingsRepo.GetByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	patch.Apply(settings)
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
