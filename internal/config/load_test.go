package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-at-least-32-characters-long"

// setRequiredEnv sets the variables without which Load fails validation.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PROMANAGE_DATABASE_URL", "postgres://localhost:5432/promanage_test")
	t.Setenv("PROMANAGE_AUTH_JWT_SECRET", testJWTSecret)
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 4000, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, "postgres://localhost:5432/promanage_test", cfg.Database.URL)
		assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PROMANAGE_SERVER_PORT", "8080")
		t.Setenv("PROMANAGE_SERVER_LOG_LEVEL", "debug")
		t.Setenv("PROMANAGE_AUTH_TOKEN_LIFETIME_MINUTES", "120")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 120, cfg.Auth.TokenLifetimeMinutes)
	})

	t.Run("missing database URL fails validation", func(t *testing.T) {
		t.Setenv("PROMANAGE_AUTH_JWT_SECRET", testJWTSecret)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short JWT secret fails validation", func(t *testing.T) {
		t.Setenv("PROMANAGE_DATABASE_URL", "postgres://localhost:5432/promanage_test")
		t.Setenv("PROMANAGE_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PROMANAGE_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})
}
