package handlers

import (
	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", middleware.ValidateBody[models.RegisterInput](h.validate), h.HandleRegister)
	router.Post("/login", middleware.ValidateBody[models.LoginInput](h.validate), h.HandleLogin)
}

// HandleRegister creates an account and signs the new user in.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	input := middleware.Body[models.RegisterInput](c)

	user, token, err := h.authService.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user.Safe(),
		"token": token,
	})
}

// HandleLogin checks credentials and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	input := middleware.Body[models.LoginInput](c)

	user, token, err := h.authService.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":  user.Safe(),
		"token": token,
	})
}
