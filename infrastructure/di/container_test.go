package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"infograph-backend/infrastructure/config"
)

func TestInitializeContainer(t *testing.T) {
	cfg := config.Default()

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)

	assert.Same(t, cfg, container.Config)
	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.Metrics)
	assert.NotNil(t, container.SearchCache)
	require.NotNil(t, container.Router)
	assert.NotNil(t, container.Router.Setup())
}

func TestProvideLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := config.Default()
			cfg.LogLevel = tt.level

			logger, err := ProvideLogger(cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
