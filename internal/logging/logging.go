// Package logging configures the process-wide slog logger for the
// mysqlcomplete CLI. The completion engine itself never logs above Debug:
// per spec.md §7, every error condition it can hit (malformed input, a
// cache miss, a scanner push/pop imbalance) is non-fatal and degrades the
// result rather than failing the caller.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds a slog.Logger for the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"), installs it as the slog default,
// and returns it.
func Setup(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
