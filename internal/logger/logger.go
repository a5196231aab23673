// SPDX-License-Identifier: MIT

// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler, level and destination of a logger.
// Format is "json" for slog.JSONHandler; anything else uses slog.TextHandler.
type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns text output at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// New builds a logger from cfg without touching the default logger.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// Init installs a logger built from cfg as the slog default.
func Init(cfg Config) {
	slog.SetDefault(New(cfg))
}

// ForComponent returns the default logger tagged with component=name.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
