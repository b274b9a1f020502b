package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db  *gorm.DB
	env string
}

func NewHealthHandler(db *gorm.DB, env string) *HealthHandler {
	return &HealthHandler{
		db:  db,
		env: env,
	}
}

func (h *HealthHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status, database, code := "ok", "up", fiber.StatusOK
	if err := h.ping(c.UserContext()); err != nil {
		status, database, code = "degraded", "down", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"env":       h.env,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
