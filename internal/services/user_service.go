package services

import (
	"context"
	"errors"
	"fmt"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// UserService handles profile reads, updates and account deletion.
type UserService struct {
	userRepo repositories.UserRepository
	auth     *AuthService
	events   EventPublisher
}

// NewUserService creates a new UserService. auth is used to hash new
// passwords.
func NewUserService(userRepo repositories.UserRepository, auth *AuthService, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		events:   events,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}

// Update writes only the supplied fields. A changed email is checked against
// every other account first.
func (s *UserService) Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)

	if patch.Email != nil {
		email := models.NormalizeEmail(*patch.Email)
		if email != user.Email {
			taken, err := s.userRepo.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailInUse
			}
			user.Email = email
		}
	}

	if patch.Password != nil {
		hash, err := s.auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailInUse
		}
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}

// Delete removes the account together with its tasks, lists and settings.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	publish(s.events, "user.deleted", id, id)
	return nil
}
