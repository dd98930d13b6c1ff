package logger

import (
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(&config.ServerConfig{Env: "production"}, &config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.ServerConfig{}, &config.LoggingConfig{Level: "loud"})
	require.Error(t, err)
}
