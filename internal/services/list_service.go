package services

import (
	"context"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// ListService implements list operations scoped to the acting user.
type ListService struct {
	listRepo repositories.ListRepository
	userRepo repositories.UserRepository
	events   EventPublisher
}

func NewListService(listRepo repositories.ListRepository, userRepo repositories.UserRepository, events EventPublisher) *ListService {
	return &ListService{
		listRepo: listRepo,
		userRepo: userRepo,
		events:   events,
	}
}

func (s *ListService) Create(ctx context.Context, userID uint, in models.NewList) (*models.List, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	list := &models.List{
		Title:    in.Title,
		Color:    models.DefaultListColor,
		AuthorID: userID,
	}
	if in.Color != nil {
		list.Color = *in.Color
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	publish(s.events, "list.created", userID, list.ID)
	return list, nil
}

func (s *ListService) List(ctx context.Context, userID uint) ([]models.List, error) {
	return s.listRepo.ListByAuthor(ctx, userID)
}

// GetWithTasks returns one list with its tasks embedded.
func (s *ListService) GetWithTasks(ctx context.Context, userID, listID uint) (*models.List, error) {
	list, err := s.listRepo.GetWithTasks(ctx, listID, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrListNotFound)
	}
	return list, nil
}

func (s *ListService) Update(ctx context.Context, userID, listID uint, patch models.ListPatch) (*models.List, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	list, err := s.get(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	patch.Apply(list)
	return s.save(ctx, list)
}

// Delete removes the list and every task filed in it.
func (s *ListService) Delete(ctx context.Context, userID, listID uint) error {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if err := s.listRepo.DeleteWithTasks(ctx, listID, userID); err != nil {
		return notFoundAs(err, ErrListNotFound)
	}
	publish(s.events, "list.deleted", userID, listID)
	return nil
}

func (s *ListService) ToggleFavorite(ctx context.Context, userID, listID uint) (*models.List, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	list, err := s.get(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	list.Favorite = !list.Favorite
	return s.save(ctx, list)
}

func (s *ListService) get(ctx context.Context, userID, listID uint) (*models.List, error) {
	list, err := s.listRepo.GetByID(ctx, listID, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrListNotFound)
	}
	return list, nil
}

func (s *ListService) save(ctx context.Context, list *models.List) (*models.List, error) {
	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, notFoundAs(err, ErrListNotFound)
	}
	return list, nil
}
