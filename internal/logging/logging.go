// Package logging configures structured logging for the textable command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the handler used for log records.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// New returns a logger writing to w (os.Stderr if nil) in format. Debug
// lowers the level from Info to Debug.
func New(debug bool, w io.Writer, format Format) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case JSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
