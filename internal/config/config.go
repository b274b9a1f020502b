package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the runtime configuration of the API.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Limiter  LimiterConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	CORSOrigins     string
	BodyLimit       int
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type LimiterConfig struct {
	Max    int
	Window time.Duration
}

// RedisConfig is optional; an empty Addr keeps the limiter in memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RabbitMQConfig is optional; an empty URL disables domain events.
type RabbitMQConfig struct {
	URL string
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// .env is optional, real deployments use the environment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             strings.ToLower(v.GetString("APP_ENV")),
			CORSOrigins:     v.GetString("CORS_ORIGINS"),
			BodyLimit:       v.GetInt("BODY_LIMIT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			TokenTTL:   v.GetDuration("TOKEN_TTL"),
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Limiter: LimiterConfig{
			Max:    v.GetInt("RATE_LIMIT_MAX"),
			Window: v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("RABBITMQ_URL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("BODY_LIMIT", 1024*1024)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=tasklist port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RABBITMQ_URL", "")
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether internal error details may be exposed.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}
