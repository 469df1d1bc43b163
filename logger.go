package exkmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with exkmeans-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithMetric adds a distance metric field to the logger.
func (l *Logger) WithMetric(metric string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", metric),
	}
}

// LogCombination logs the outcome of one initialization.
func (l *Logger) LogCombination(ctx context.Context, combination []int, iterations int, distortion int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "combination failed",
			"combination", combination,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "combination converged",
			"combination", combination,
			"iterations", iterations,
			"distortion", distortion,
		)
	}
}

// LogProgress logs how many combinations have been explored so far.
func (l *Logger) LogProgress(ctx context.Context, done int, total uint64, best int64) {
	l.InfoContext(ctx, "search progress",
		"done", done,
		"total", total,
		"best_distortion", best,
	)
}

// LogSearch logs the end of a search.
func (l *Logger) LogSearch(ctx context.Context, combinations int, best []int, distortion int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"combinations", combinations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"combinations", combinations,
			"best_initialization", best,
			"best_distortion", distortion,
		)
	}
}
