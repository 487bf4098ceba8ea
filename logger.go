package brepgo

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/topology"
)

// Logger wraps slog.Logger with brepgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithModel adds a model name field to the logger.
func (l *Logger) WithModel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", name),
	}
}

// LogSweep logs the outcome of an extrude or revolve.
func (l *Logger) LogSweep(ctx context.Context, op string, res algo.Result, err error) {
	switch {
	case err == nil:
		l.InfoContext(ctx, "sweep completed",
			"op", op,
			"vertices", res.Created.Vertices,
			"edges", res.Created.Edges,
			"faces", res.Created.Faces,
		)
	case errors.Is(err, algo.ErrPartialSweep):
		l.WarnContext(ctx, "sweep completed with failures",
			"op", op,
			"vertices", res.Created.Vertices,
			"edges", res.Created.Edges,
			"faces", res.Created.Faces,
			"failed", len(res.Failures),
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "sweep failed",
			"op", op,
			"error", err,
		)
	}
}

// LogCheck logs a topology report. Errors are logged at Warn, warnings and
// clean reports at Info.
func (l *Logger) LogCheck(ctx context.Context, rep topology.Report) {
	switch {
	case rep.HasErrors():
		l.WarnContext(ctx, "topology errors found",
			append([]any{"errors", rep.ErrorCount()}, rep.LogAttrs()...)...,
		)
	case rep.HasWarnings():
		l.InfoContext(ctx, "topology check completed with warnings", rep.LogAttrs()...)
	default:
		l.InfoContext(ctx, "topology check passed")
	}
}
