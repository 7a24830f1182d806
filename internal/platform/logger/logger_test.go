package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/promanage/promanage-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		wantDebugOn bool
	}{
		{"debug level", "debug", true},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"error level", "error", false},
		{"case insensitive", "DEBUG", true},
		{"invalid level falls back to info", "verbose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 4000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tt.wantDebugOn,
				log.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, log.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	stored := slog.Default().With("request", "abc123")

	ctx := WithLogger(context.Background(), stored)
	assert.Same(t, stored, FromContext(ctx))
	assert.Same(t, stored, FromContextOrDefault(ctx, nil))

	t.Run("empty context falls back", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		assert.NotNil(t, FromContext(ctx))

		fallback := slog.Default().With("component", "test")
		assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
		assert.NotNil(t, FromContextOrDefault(ctx, nil))
	})
}
