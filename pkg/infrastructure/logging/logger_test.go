package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWithCapture(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, slog.LevelDebug)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "count", 42)
	logger.Warn("warn message", "flag", true)
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.NotNil(t, entry["msg"])
		assert.NotNil(t, entry["level"])
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLoggerTo(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("visible")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, slog.LevelInfo).With("report", "orders-by-plant")

	logger.Info("report complete")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "orders-by-plant", entry["report"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, level)
	}

	_, err := ParseLevel("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "chatty"`)
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	old := Default()
	defer SetDefault(old)
	SetDefault(NewJSONLoggerTo(&buf, slog.LevelDebug))

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	output := buf.String()
	assert.Contains(t, output, "debug")
	assert.Contains(t, output, "info")
	assert.Contains(t, output, "warn")
	assert.Contains(t, output, "error")
}
