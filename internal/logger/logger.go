package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log *slog.Logger

// Initialize configures the process-wide logger. Level is one of
// debug/info/warn/error, format is "json" or "text". Unknown values
// fall back to info/text.
func Initialize(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
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

func get() *slog.Logger {
	if log == nil {
		Initialize("info", "text")
	}
	return log
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }

func Info(msg string, args ...any) { get().Info(msg, args...) }

func Warn(msg string, args ...any) { get().Warn(msg, args...) }

func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a child logger carrying the given attributes, for
// components that want a fixed context on every line.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}
