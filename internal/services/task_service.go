package services

import (
	"context"

	"tasklist/internal/models"
	"tasklist/internal/repositories"
)

// TaskService implements task operations scoped to the acting user.
type TaskService struct {
	taskRepo repositories.TaskRepository
	listRepo repositories.ListRepository
	userRepo repositories.UserRepository
	events   EventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, listRepo repositories.ListRepository, userRepo repositories.UserRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		listRepo: listRepo,
		userRepo: userRepo,
		events:   events,
	}
}

func (s *TaskService) List(ctx context.Context, userID uint, filter models.TaskFilter) ([]models.Task, error) {
	return s.taskRepo.ListByAuthor(ctx, userID, filter)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	return task, nil
}

// Create inserts a task. A referenced list must belong to the same user.
func (s *TaskService) Create(ctx context.Context, userID uint, in models.NewTask) (*models.Task, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	if in.ListID != nil {
		if err := s.ownsList(ctx, userID, *in.ListID); err != nil {
			return nil, err
		}
	}

	task := in.Task(userID)
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	publish(s.events, "task.created", userID, task.ID)
	return task, nil
}

// Update applies a partial update. A falsy listId detaches the task; any
// other listId must name one of the user's lists.
func (s *TaskService) Update(ctx context.Context, userID uint, upd models.TaskUpdate) (*models.Task, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	task, err := s.Get(ctx, userID, upd.ID)
	if err != nil {
		return nil, err
	}
	if listID, ok := upd.ListID.Target(); ok {
		if err := s.ownsList(ctx, userID, listID); err != nil {
			return nil, err
		}
	}

	upd.Apply(task)
	return s.save(ctx, task)
}

// Delete removes the task and returns it as it was.
func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Delete(ctx, task.ID, userID); err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}

	publish(s.events, "task.deleted", userID, task.ID)
	return task, nil
}

func (s *TaskService) ToggleArchived(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Archived = !task.Archived
	return s.save(ctx, task)
}

// ToggleStatus flips DONE to TODO and anything else to DONE.
func (s *TaskService) ToggleStatus(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = task.Status.Toggled()
	return s.save(ctx, task)
}

func (s *TaskService) save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	return task, nil
}

func (s *TaskService) ownsList(ctx context.Context, userID, listID uint) error {
	if _, err := s.listRepo.GetByID(ctx, listID, userID); err != nil {
		return notFoundAs(err, ErrListNotFound)
	}
	return nil
}
