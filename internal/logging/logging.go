// Package logging configures the process-wide slog logger for the commands.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a text handler on stderr as the default logger and returns
// it. debug lowers the level to Debug.
func Setup(debug bool) *slog.Logger {
	return New(os.Stderr, debug)
}

// New installs a text handler writing to w as the default logger.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
