package handlers

import (
	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service  *services.SettingsService
	validate *validator.Validate
}

func NewSettingsHandler(service *services.SettingsService, validate *validator.Validate) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		validate: validate,
	}
}

func (h *SettingsHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	settings := router.Group("/settings", auth)
	settings.Get("/", h.HandleGetSettings)
	settings.Put("/", middleware.ValidateBody[models.SettingsPatch](h.validate), h.HandleUpdateSettings)
}

func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.service.Get(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"settings": settings})
}

func (h *SettingsHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.service.Update(c.UserContext(), userID, middleware.Body[models.SettingsPatch](c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"settings": settings})
}
