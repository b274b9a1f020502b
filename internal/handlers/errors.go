package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"tasklist/internal/services"
	"tasklist/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the process-wide error responder. Known error kinds map to
// their status codes; anything else is a 500 whose detail is only exposed
// in development.
func ErrorHandler(isDev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.Error
		var ferr *fiber.Error

		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  verr.Issues,
			})
		case services.IsNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": sentence(err.Error()),
			})
		case errors.Is(err, services.ErrEmailInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Email already in use",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		case errors.Is(err, services.ErrInvalidToken):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		case errors.As(err, &ferr) && ferr.Code < fiber.StatusInternalServerError:
			return c.Status(ferr.Code).JSON(fiber.Map{
				"message": ferr.Message,
			})
		}

		log.Printf("Unhandled error [%v] %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)

		body := fiber.Map{"message": "Internal server error"}
		if isDev {
			body["error"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// NotFound answers requests that matched no route.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("Route %s %s not found", c.Method(), c.Path()),
	})
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
