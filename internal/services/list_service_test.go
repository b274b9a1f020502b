package services_test

import (
	"context"
	"testing"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
	"tasklist/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListService_Create(t *testing.T) {
	ctx := context.Background()
	lists := new(MockListRepository)
	users := new(MockUserRepository)
	publisher := new(MockPublisher)
	listService := services.NewListService(lists, users, publisher)

	users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
	lists.On("Create", mock.Anything, mock.AnythingOfType("*models.List")).Return(nil).Twice()
	publisher.On("PublishEvent", eventOfType("list.created")).Return(nil).Twice()

	list, err := listService.Create(ctx, 1, models.NewList{Title: "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultListColor, list.Color)
	assert.False(t, list.Favorite)
	assert.Equal(t, uint(1), list.AuthorID)

	list, err = listService.Create(ctx, 1, models.NewList{Title: "Work", Color: strPtr("#ff0000")})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", list.Color)

	lists.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestListService_UpdateAndToggle(t *testing.T) {
	ctx := context.Background()
	lists := new(MockListRepository)
	users := new(MockUserRepository)
	listService := services.NewListService(lists, users, nil)

	users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)

	lists.On("GetByID", mock.Anything, uint(2), uint(1)).Return(&models.List{ID: 2, Title: "old", Color: "#000000", AuthorID: 1}, nil).Once()
	lists.On("Update", mock.Anything, mock.AnythingOfType("*models.List")).Return(nil).Once()
	list, err := listService.Update(ctx, 1, 2, models.ListPatch{Title: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", list.Title)
	assert.Equal(t, "#000000", list.Color)

	lists.On("GetByID", mock.Anything, uint(2), uint(1)).Return(&models.List{ID: 2, AuthorID: 1, Favorite: true}, nil).Once()
	lists.On("Update", mock.Anything, mock.AnythingOfType("*models.List")).Return(nil).Once()
	list, err = listService.ToggleFavorite(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, list.Favorite)

	lists.On("GetByID", mock.Anything, uint(5), uint(1)).Return(nil, repositories.ErrNotFound).Once()
	_, err = listService.ToggleFavorite(ctx, 1, 5)
	assert.ErrorIs(t, err, services.ErrListNotFound)

	lists.AssertExpectations(t)
}

func TestListService_Delete(t *testing.T) {
	ctx := context.Background()
	lists := new(MockListRepository)
	users := new(MockUserRepository)
	publisher := new(MockPublisher)
	listService := services.NewListService(lists, users, publisher)

	users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)

	lists.On("DeleteWithTasks", mock.Anything, uint(2), uint(1)).Return(nil).Once()
	publisher.On("PublishEvent", eventOfType("list.deleted")).Return(nil).Once()
	require.NoError(t, listService.Delete(ctx, 1, 2))

	lists.On("DeleteWithTasks", mock.Anything, uint(2), uint(1)).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, listService.Delete(ctx, 1, 2), services.ErrListNotFound)

	lists.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
