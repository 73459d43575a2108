package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"info allowed at debug", LevelDebug, LevelInfo, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"warn allowed at info", LevelInfo, LevelWarn, true},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
		{"error allowed at error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriter(&buf, tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("greeting rendered")
			case LevelInfo:
				logger.Info("greeting rendered")
			case LevelWarn:
				logger.Warn("greeting rendered")
			case LevelError:
				logger.Error("greeting rendered")
			}

			if tt.shouldLog {
				assert.Contains(t, buf.String(), "greeting rendered")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	child := logger.WithFields(map[string]interface{}{
		"method": "GET",
		"path":   "/",
	})
	child.Warn("cookie unreadable")

	out := buf.String()
	assert.Contains(t, out, "WARN: cookie unreadable")
	assert.Contains(t, out, "method=GET path=/")
}

func TestLoggerInlineKeyVals(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	logger.Warn("rejected form", "error", errors.New("missing field"), "status", 400)

	out := buf.String()
	assert.Contains(t, out, `error="missing field"`)
	assert.Contains(t, out, "status=400")
}

func TestLoggerChildDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	_ = logger.With("component", "greeter")
	logger.Info("plain")

	assert.NotContains(t, buf.String(), "component=greeter")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"simple string", "Alice", "Alice"},
		{"string with spaces", "Alice Smith", `"Alice Smith"`},
		{"empty string", "", `""`},
		{"integer", 600, "600"},
		{"error", errors.New("oops"), `"oops"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelWarn)
	t.Cleanup(func() { SetOutput(log.New(&bytes.Buffer{}, "", 0)) })

	Info("hidden")
	assert.Empty(t, buf.String())

	With("component", "test").Warn("shown")
	assert.True(t, strings.HasPrefix(buf.String(), "WARN: shown"))
	assert.Contains(t, buf.String(), "component=test")
}
