// Package redisstore adapts a go-redis client to fiber.Storage so the rate
// limiter can share counters across instances.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "tasklist:limiter:"

// Storage implements fiber.Storage.
type Storage struct {
	client redis.UniversalClient
	prefix string
}

// Config holds Redis connection details.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewWithClient(client, cfg.Prefix), nil
}

// NewWithClient wraps an existing client. An empty prefix uses the default.
func NewWithClient(client redis.UniversalClient, prefix string) *Storage {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Storage{client: client, prefix: prefix}
}

// Get returns nil, nil for a missing key.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set stores val; exp of zero means no expiration.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

// Reset removes every key under the prefix.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}
