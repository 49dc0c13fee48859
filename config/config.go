package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. Empty RedisHost disables the rate limiter.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// S3 image storage. Empty bucket keeps uploads in passthrough mode.
	S3Bucket  string
	AWSRegion string

	// CORS
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to Docker secret files for sensitive fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnvOrSecret("DB_PASSWORD", "db_password"),
		DBName:        getEnv("DB_NAME", "platefeed"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrSecret("REDIS_PASSWORD", "redis_password"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     getEnvOrSecret("JWT_SECRET", "jwt_secret"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable and falls back to a
// Docker secret file of the given name.
func getEnvOrSecret(key, secretName string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
