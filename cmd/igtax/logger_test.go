package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		description string
		level       string
		format      string
		enabled     zapcore.Level
		disabled    zapcore.Level
		expectError bool
	}{
		{"defaults", "", "", zapcore.InfoLevel, zapcore.DebugLevel, false},
		{"debug console", "debug", "console", zapcore.DebugLevel, zapcore.DebugLevel - 1, false},
		{"warn json", "warn", "json", zapcore.WarnLevel, zapcore.InfoLevel, false},
		{"warning alias", "warning", "json", zapcore.WarnLevel, zapcore.InfoLevel, false},
		{"upper case level", "ERROR", "console", zapcore.ErrorLevel, zapcore.WarnLevel, false},
		{"invalid level", "verbose", "console", 0, 0, true},
		{"invalid format", "info", "xml", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			logger, err := initializeLogger(tt.level, tt.format)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}
