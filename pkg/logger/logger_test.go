package logger

import (
	"errors"
	"log/slog"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"basic scope", "gateway", "gateway"},
		{"nested scope", "mcpsrv.sse", "mcpsrv.sse"},
		{"empty scope", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			if attr.Key != "scope" {
				t.Errorf("Scope() key = %q, want %q", attr.Key, "scope")
			}
			if attr.Value.String() != tt.want {
				t.Errorf("Scope() value = %q, want %q", attr.Value.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("backend unreachable")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			if attr.Key != "error" {
				t.Errorf("Error() key = %q, want %q", attr.Key, "error")
			}
			gotErr := attr.Value.Any()
			if gotErr != tt.err {
				t.Errorf("Error() value = %v, want %v", gotErr, tt.err)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		wantEnabled slog.Level
		wantMuted   slog.Level
	}{
		{"default is info", "", slog.LevelInfo, slog.LevelDebug},
		{"debug", "debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"warn", "warn", slog.LevelWarn, slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn, slog.LevelInfo},
		{"error", "error", slog.LevelError, slog.LevelWarn},
		{"unknown falls back to info", "verbose", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			if log == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if !log.Enabled(nil, tt.wantEnabled) {
				t.Errorf("level %v should be enabled for LOG_LEVEL=%q", tt.wantEnabled, tt.level)
			}
			if log.Enabled(nil, tt.wantMuted) {
				t.Errorf("level %v should NOT be enabled for LOG_LEVEL=%q", tt.wantMuted, tt.level)
			}
		})
	}
}
