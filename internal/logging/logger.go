package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a slog logger writing text or JSON records to w.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// FromEnv reads ELYSIUM_LOG_LEVEL and ELYSIUM_LOG_FORMAT, falling back to
// info/text for unset or invalid values.
func FromEnv() *slog.Logger {
	level := os.Getenv("ELYSIUM_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger, err := New(level, os.Getenv("ELYSIUM_LOG_FORMAT"), os.Stderr)
	if err != nil {
		logger, _ = New("info", "text", os.Stderr)
	}
	return logger
}
