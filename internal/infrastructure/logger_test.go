package infrastructure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseLogLevel tests log level string parsing
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

// TestRunIDContext tests run ID propagation through context
func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = WithRunID(ctx, "run-123")
	assert.Equal(t, "run-123", GetRunID(ctx))

	// EnsureRunID keeps an existing ID
	assert.Equal(t, "run-123", GetRunID(EnsureRunID(ctx)))

	// EnsureRunID generates one when missing
	fresh := EnsureRunID(context.Background())
	assert.NotEmpty(t, GetRunID(fresh))
}

// TestGenerateRunIDUnique tests run ID uniqueness
func TestGenerateRunIDUnique(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
