// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aperrault/phraseur/internal/config"
)

// Setup initializes the application's logging based on the provided
// configuration. It creates a structured JSON logger with the configured log
// level writing to stdout, sets it as the default logger, and returns it.
func Setup(cfg config.ServerConfig) *slog.Logger {
	return setupWithWriter(cfg, os.Stdout)
}

// setupWithWriter is the testable core of Setup.
func setupWithWriter(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps a configured log level string (case-insensitive) onto a
// slog.Level. Unknown values fall back to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
