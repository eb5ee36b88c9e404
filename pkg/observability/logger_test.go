package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates text logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			Output: &buf,
		})
		require.NotNil(t, logger)

		logger.Info("test message", "key", "value")
		output := buf.String()

		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "key=value")
	})

	t.Run("creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
			Output: &buf,
		})

		logger.Info("test message", "key", "value")

		var logEntry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "test message", logEntry["msg"])
		assert.Equal(t, "value", logEntry["key"])
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
			Output: &buf,
		})

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("adds service attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:          LogLevelInfo,
			Format:         LogFormatJSON,
			Output:         &buf,
			ServiceName:    "test-service",
			ServiceVersion: "1.0.0",
		})

		logger.Info("test")

		var logEntry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "test-service", logEntry["service"])
		assert.Equal(t, "1.0.0", logEntry["version"])
	})

	t.Run("adds correlation and request IDs from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
			Output: &buf,
		})

		ctx := WithCorrelationID(context.Background(), "corr-123")
		ctx = WithRequestID(ctx, "req-456")
		logger.InfoContext(ctx, "test with context")

		var logEntry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "corr-123", logEntry[CorrelationIDKey])
		assert.Equal(t, "req-456", logEntry[RequestIDKey])
	})
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()

	assert.Equal(t, LogLevelWarn, cfg.Level)
	assert.Equal(t, LogFormatText, cfg.Format)
	assert.Equal(t, "tasklist", cfg.ServiceName)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestAttributeHandler(t *testing.T) {
	t.Run("Enabled delegates to base handler", func(t *testing.T) {
		var buf bytes.Buffer
		base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
		handler := &attributeHandler{handler: base}

		assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("WithAttrs keeps default attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:       LogLevelInfo,
			Format:      LogFormatJSON,
			Output:      &buf,
			ServiceName: "svc",
		}).With("component", "menu")

		logger.Info("hello")

		var logEntry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "svc", logEntry["service"])
		assert.Equal(t, "menu", logEntry["component"])
	})
}

func TestWithCorrelationID(t *testing.T) {
	t.Run("generates an id when empty", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")

		id := CorrelationIDFromContext(ctx)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("keeps the given id", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "abc")
		assert.Equal(t, "abc", CorrelationIDFromContext(ctx))
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
		assert.Equal(t, "", RequestIDFromContext(context.Background()))
	})
}
