package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/database"
	"tasklist/internal/router"
	"tasklist/pkg/rabbitmq"
	"tasklist/pkg/redisstore"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var opts router.Options

	// --- Optional Redis limiter storage ---
	var store *redisstore.Storage
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		store, err = redisstore.New(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		opts.LimiterStorage = store
		log.Printf("Rate limiter using Redis at %s", cfg.Redis.Addr)
	}

	// --- Optional RabbitMQ events ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.URL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		opts.Events = mqClient

		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	app := router.New(cfg, db, opts)

	// --- Start HTTP Server ---
	go func() {
		log.Printf("Starting server on port %s (%s)", cfg.Server.Port, cfg.Server.Env)
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if store != nil {
		if err := store.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server gracefully stopped")
}
