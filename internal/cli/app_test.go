package cli

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/infrastructure/config"
)

func TestEffectiveLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "warn"

	assert.Equal(t, "warn", effectiveLogLevel(cfg, Options{}))
	assert.Equal(t, "debug", effectiveLogLevel(cfg, Options{LogLevel: "debug"}))
}

func TestApp_SessionLoggerHonorsLogLevelFlag(t *testing.T) {
	// Arrange
	t.Setenv("PDM_LOG_LEVEL", "trace")
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "error"
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = t.TempDir()

	a := &App{
		Config:     cfg,
		logLevel:   effectiveLogLevel(cfg, Options{LogLevel: "debug"}),
		logCleanup: func() {},
	}
	t.Cleanup(func() { _ = a.Close() })

	// Act
	ctx, logger := a.SessionLogger()

	// Assert
	require.NotNil(t, ctx)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}
