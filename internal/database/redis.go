package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platefeed/backend/config"
)

// NewRedisClient creates a new Redis client. Returns nil when Redis is not
// configured; callers treat that as "rate limiting disabled".
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisHost == "" && cfg.RedisURL == "" {
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	// Use Redis URL if provided (for production deployments)
	if cfg.RedisURL != "" {
		parsedOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client, nil
}
