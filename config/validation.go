package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every field the server cannot run without is
// present. Optional integrations (Redis, S3) are validated only when
// partially configured.
func ValidateConfig(cfg *Config) error {
	var missing []string

	if cfg.ServerPort == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBPort == "" {
		missing = append(missing, "DB_PORT")
	}
	if cfg.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION is required when S3_BUCKET_NAME is set")
	}

	return nil
}
