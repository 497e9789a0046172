package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel},
		{level: "info", enabled: zapcore.InfoLevel},
		{level: "warn", enabled: zapcore.WarnLevel},
		{level: "error", enabled: zapcore.ErrorLevel},
		{level: "bogus", enabled: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level, "json", "")
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.enabled-1))
			}
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	log, err := New("info", "console", "")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_FileSink(t *testing.T) {
	file := filepath.Join(t.TempDir(), "client.log")

	log, err := New("info", "json", file)
	require.NoError(t, err)

	log.Info("hello")
	_ = log.Sync()

	assert.FileExists(t, file)
}
