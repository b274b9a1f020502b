package router

import (
	"io"
	"os"

	"tasklist/internal/config"
	"tasklist/internal/handlers"
	"tasklist/internal/middleware"
	"tasklist/internal/repositories"
	"tasklist/internal/services"
	"tasklist/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options carries optional infrastructure. Zero values fall back to
// in-process behavior.
type Options struct {
	Events         services.EventPublisher
	LimiterStorage fiber.Storage
	// LogOutput receives request log lines; nil means stdout.
	LogOutput io.Writer
}

// New wires repositories, services and handlers into a Fiber app.
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tasklist",
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler(cfg.Server.IsDevelopment()),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stdout
	}
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: logOutput,
	}))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)
	listRepo := repositories.NewGORMListRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.Auth, opts.Events)
	userService := services.NewUserService(userRepo, authService, opts.Events)
	taskService := services.NewTaskService(taskRepo, listRepo, userRepo, opts.Events)
	listService := services.NewListService(listRepo, userRepo, opts.Events)
	settingsService := services.NewSettingsService(settingsRepo, userRepo)

	// --- Handlers ---
	validate := validation.New()
	auth := middleware.AuthRequired(authService)

	handlers.NewHealthHandler(db, cfg.Server.Env).RegisterRoutes(app)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: cfg.Limiter.Window,
		Storage:    opts.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later",
			})
		},
	}))

	handlers.NewAuthHandler(authService, validate).RegisterRoutes(api)
	handlers.NewUserHandler(userService, validate).RegisterRoutes(api, auth)
	handlers.NewTaskHandler(taskService, validate).RegisterRoutes(api, auth)
	handlers.NewListHandler(listService, validate).RegisterRoutes(api, auth)
	handlers.NewSettingsHandler(settingsService, validate).RegisterRoutes(api, auth)

	app.Use(handlers.NotFound)

	return app
}
