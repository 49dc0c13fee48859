package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
	}
}

// NewRecipeCreationRateLimiter limits how many recipes a user may create
// per hour.
func NewRecipeCreationRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     20,
		KeyPrefix: "rate_limit:recipe_creation",
	})
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		userIDStr := fmt.Sprintf("%v", userID)
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), userIDStr)
		if err != nil {
			// Log error but don't fail the request
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAllowed checks if a request from the given user is allowed
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, userID string) (bool, int, time.Time, error) {
	now := time.Now()
	windowStart := now.Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, userID, windowStart.Unix())

	// Use Redis pipeline for atomic operations
	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	resetTime := windowStart.Add(rl.config.Window)
	allowed := count <= rl.config.Limit

	return allowed, remaining, resetTime, nil
}
