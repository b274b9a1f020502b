package handlers

import (
	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService *services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validate,
	}
}

// RegisterRoutes registers /me. auth must run first.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	me := router.Group("/me", auth)
	me.Get("/", h.HandleGetMe)
	me.Put("/", middleware.ValidateBody[models.UserPatch](h.validate), h.HandleUpdateMe)
	me.Patch("/", middleware.ValidateBody[models.UserPatch](h.validate), h.HandleUpdateMe)
	me.Delete("/", h.HandleDeleteMe)
}

func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.FindByID(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user.Safe()})
}

func (h *UserHandler) HandleUpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Update(c.UserContext(), userID, middleware.Body[models.UserPatch](c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user.Safe()})
}

// HandleDeleteMe removes the account and everything it owns.
func (h *UserHandler) HandleDeleteMe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.UserContext(), userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
