package handlers

import (
	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the task routes behind auth.
func (h *TaskHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	byID := middleware.ValidateParams[models.TaskIDParams](h.validate)

	tasks := router.Group("/tasks", auth)
	tasks.Get("/", middleware.ValidateQuery[models.TaskFilter](h.validate), h.HandleGetTasks)
	tasks.Post("/", middleware.ValidateBody[models.NewTask](h.validate), h.HandleCreateTask)
	tasks.Patch("/", middleware.ValidateBody[models.TaskUpdate](h.validate), h.HandleUpdateTask)
	tasks.Get("/:taskId", byID, h.HandleGetTask)
	tasks.Delete("/:taskId", byID, h.HandleDeleteTask)
	tasks.Patch("/:taskId/toggle-archived", byID, h.HandleToggleArchived)
	tasks.Patch("/:taskId/toggle-status", byID, h.HandleToggleStatus)
}

// HandleGetTasks lists the caller's tasks, optionally filtered.
func (h *TaskHandler) HandleGetTasks(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.UserContext(), userID, middleware.Query[models.TaskFilter](c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (h *TaskHandler) HandleGetTask(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.UserContext(), userID, middleware.Params[models.TaskIDParams](c).TaskID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Create(c.UserContext(), userID, middleware.Body[models.NewTask](c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

// HandleUpdateTask applies a partial update; the task id travels in the body.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Update(c.UserContext(), userID, middleware.Body[models.TaskUpdate](c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Delete(c.UserContext(), userID, middleware.Params[models.TaskIDParams](c).TaskID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Task deleted",
		"task":    task,
	})
}

func (h *TaskHandler) HandleToggleArchived(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.ToggleArchived(c.UserContext(), userID, middleware.Params[models.TaskIDParams](c).TaskID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

func (h *TaskHandler) HandleToggleStatus(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.ToggleStatus(c.UserContext(), userID, middleware.Params[models.TaskIDParams](c).TaskID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}
