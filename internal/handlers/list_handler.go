package handlers

import (
	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ListHandler handles HTTP requests for lists.
type ListHandler struct {
	service  *services.ListService
	validate *validator.Validate
}

func NewListHandler(service *services.ListService, validate *validator.Validate) *ListHandler {
	return &ListHandler{
		service:  service,
		validate: validate,
	}
}

func (h *ListHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	byID := middleware.ValidateParams[models.ListIDParams](h.validate)

	lists := router.Group("/lists", auth)
	lists.Get("/", h.HandleGetLists)
	lists.Post("/", middleware.ValidateBody[models.NewList](h.validate), h.HandleCreateList)
	lists.Get("/:id", byID, h.HandleGetList)
	lists.Put("/:id", byID, middleware.ValidateBody[models.ListPatch](h.validate), h.HandleUpdateList)
	lists.Delete("/:id", byID, h.HandleDeleteList)
	lists.Patch("/:id/favorite", byID, h.HandleToggleFavorite)
}

func (h *ListHandler) HandleGetLists(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	lists, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"lists": lists})
}

// HandleGetList returns one list with its tasks.
func (h *ListHandler) HandleGetList(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	list, err := h.service.GetWithTasks(c.UserContext(), userID, middleware.Params[models.ListIDParams](c).ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"list": list.WithTasks()})
}

func (h *ListHandler) HandleCreateList(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	list, err := h.service.Create(c.UserContext(), userID, middleware.Body[models.NewList](c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"list": list})
}

func (h *ListHandler) HandleUpdateList(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	listID := middleware.Params[models.ListIDParams](c).ID
	list, err := h.service.Update(c.UserContext(), userID, listID, middleware.Body[models.ListPatch](c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"list": list})
}

// HandleDeleteList deletes the list and its tasks.
func (h *ListHandler) HandleDeleteList(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), userID, middleware.Params[models.ListIDParams](c).ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "List deleted"})
}

func (h *ListHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	list, err := h.service.ToggleFavorite(c.UserContext(), userID, middleware.Params[models.ListIDParams](c).ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"list": list})
}
