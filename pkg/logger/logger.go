// Package logger provides the process-wide slog logger and shared
// attribute helpers.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger builds the root slog logger. Level comes from LOG_LEVEL
// (debug, info, warn/warning, error; default info). GO_ENV=development
// selects a human-readable text handler, anything else gets JSON on stderr
// so stdout stays free for the stdio transport.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("GO_ENV"), "development") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope returns the standard component-scope attribute.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error returns the standard error attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
