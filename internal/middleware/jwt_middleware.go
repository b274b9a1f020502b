package middleware

import (
	"log"
	"strings"

	"tasklist/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		userID, err := claims.UserID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(userIDKey, userID)
		c.Locals(emailKey, claims.Email)

		return c.Next()
	}
}

// CurrentUserID returns the id stored by AuthRequired.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(userIDKey).(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}
