// Package logging builds the root slog logger for the services.
//
// Production runs emit JSON on stdout; local runs (LOG_FORMAT=text) get
// colored output through tint.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds a logger for the given format and level and installs it as the
// slog default.
func New(format, level string) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, format, ParseLevel(level)))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if strings.EqualFold(format, FormatText) {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// ParseLevel maps debug, info, warn and error to slog levels (default info).
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
