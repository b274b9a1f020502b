package services_test

import (
	"context"

	"tasklist/internal/models"
	"tasklist/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of repositories.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListByAuthor(ctx context.Context, authorID uint, filter models.TaskFilter) ([]models.Task, error) {
	args := m.Called(ctx, authorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id, authorID uint) (*models.Task, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, authorID uint) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}

// MockListRepository is a mock implementation of repositories.ListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.List, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.List), args.Error(1)
}

func (m *MockListRepository) GetByID(ctx context.Context, id, authorID uint) (*models.List, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.List), args.Error(1)
}

func (m *MockListRepository) GetWithTasks(ctx context.Context, id, authorID uint) (*models.List, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.List), args.Error(1)
}

func (m *MockListRepository) Create(ctx context.Context, list *models.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Update(ctx context.Context, list *models.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) DeleteWithTasks(ctx context.Context, id, authorID uint) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of repositories.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByUserID(ctx context.Context, userID uint) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context, userID uint) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Create(ctx context.Context, settings *models.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *models.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e rabbitmq.Event) bool { return e.Type == eventType })
}
