package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"DB_HOST":    "localhost",
		"DB_PORT":    "27017",
		"DB_USER":    "root",
		"DB_PASS":    "secret",
		"DB_NAME":    "vinom",
		"REDIS_HOST": "localhost",
		"REDIS_PORT": "6379",
		"JWT_SECRET": "jwt-secret",
		"JWT_ISSUER": "vinom",
		"HOST_IP":    "0.0.0.0",
		"REST_PORT":  "8080",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 27017, cfg.DBPort)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, defaultMaxGridSize, cfg.MaxGridSize)
		assert.Equal(t, defaultCacheTTL, cfg.CacheTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("GIN_MODE", "debug")
		t.Setenv("MAX_GRID_SIZE", "64")
		t.Setenv("CACHE_TTL_SECONDS", "30")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, 64, cfg.MaxGridSize)
		assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	})

	t.Run("missing variable", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("JWT_SECRET"))
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingEnv)
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("invalid integer", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REST_PORT", "http")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidEnv)
	})

	t.Run("non positive grid size", func(t *testing.T) {
		setRequired(t)
		t.Setenv("MAX_GRID_SIZE", "0")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidEnv)
	})
}
