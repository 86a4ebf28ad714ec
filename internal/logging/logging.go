// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Setup makes a colored tint handler writing to w the default slog logger.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(New(w, level))
}

// New returns a tint-backed logger without touching the default logger.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
