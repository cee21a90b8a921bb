// Package logging configures the process-wide logger.
//
// Log lines are written to both the configured log file and stdout, at the
// level named by LOG_LEVEL (DEBUG, INFO, WARNING, ERROR).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a LOG_LEVEL string to a slog.Level. Unknown values fall
// back to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup opens (or creates) the log file, creating parent directories as
// needed, and installs a logger that fans out to the file and stdout. The
// returned closer flushes the file handle; callers defer it.
func Setup(level, logFile string) (*slog.Logger, func() error, error) {
	if dir := filepath.Dir(logFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(f, os.Stdout), &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	logger.Info("logging initialized", "level", strings.ToUpper(level), "file", logFile)
	return logger, f.Close, nil
}
