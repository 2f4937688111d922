// Package logging configures structured logging via log/slog for the
// importer. A run is one linear pipeline, so loggers are scoped with the
// run's format and file rather than a request id.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format when the importer runs under a scheduler that collects
// logs; "text" is for interactive use.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
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

// WithRun returns a logger carrying the identity of one import run, so
// every entry for the run can be correlated.
//
// Usage:
//
//	logger := logging.WithRun("zip-markets", path)
//	logger.Info("normalized source file", "records", n)
func WithRun(format, file string) *slog.Logger {
	return slog.Default().With("format", format, "file", file)
}
