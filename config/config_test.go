package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "platefeed", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Empty(t, cfg.RedisHost)
	assert.Empty(t, cfg.S3Bucket)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRETS_DIR", t.TempDir())

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigS3RequiresRegion(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("S3_BUCKET_NAME", "recipe-images")
	t.Setenv("AWS_REGION", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS_REGION")

	t.Setenv("AWS_REGION", "us-east-1")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "recipe-images", cfg.S3Bucket)
}

func TestLoadConfigAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:19006, https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:19006", "https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
