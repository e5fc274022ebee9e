// Package observability provides the structured logging sink every loader
// failure lands in. The TUI owns stdout, so logs go to a file.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger opens (or creates) the log file and returns a JSON slog
// logger writing to it, plus a closer for shutdown.
func NewLogger(path, level string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	return slog.New(slog.NewJSONHandler(f, opts)), f, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
