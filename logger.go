package strsim

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/strsim/metric"
)

// Logger wraps slog.Logger with strsim-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds a metric kind field to the logger.
func (l *Logger) WithKind(k metric.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// WithCount adds a candidate count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCompare logs a single-pair comparison.
func (l *Logger) LogCompare(ctx context.Context, k metric.Kind, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compare failed",
			"kind", k.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compare completed",
			"kind", k.String(),
		)
	}
}

// LogBatch logs a batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, k metric.Kind, count, workers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch evaluation failed",
			"kind", k.String(),
			"count", count,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch evaluation completed",
			"kind", k.String(),
			"count", count,
			"workers", workers,
		)
	}
}
