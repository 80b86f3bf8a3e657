package logging

import (
	"log/slog"
	"testing"

	"github.com/twinforge/ditto-go/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	logger := New(config.LoggingConfig{
		Level:  "debug",
		Format: "text",
		Output: "stderr",
	}, "1.2.3")
	if logger == nil || logger.Logger == nil {
		t.Fatal("New() returned incomplete logger")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level not enabled")
	}
}

func TestWith(t *testing.T) {
	logger := Default()
	child := logger.With("component", "test")
	if child == nil || child.Logger == nil {
		t.Fatal("With() returned incomplete logger")
	}
	if child == logger {
		t.Error("With() returned the same logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil || logger.Logger == nil {
		t.Fatal("Default() returned incomplete logger")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Error("default logger should filter debug")
	}
}
