// Package logger configures the structured application log
package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Options controls where and how verbosely the log is written.
type Options struct {
	Writer io.Writer
	Path   string
	Debug  bool
}

// New returns a JSON logger writing to opts.Writer, or to a size-rotated
// file at opts.Path when no writer is given.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init installs the logger described by opts as the default logger.
func Init(opts Options) {
	slog.SetDefault(New(opts))
}
