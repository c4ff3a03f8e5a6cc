package octree

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with octree-specific context.
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

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an Initialize call.
func (l *Logger) LogBuild(ctx context.Context, points int, stats Stats, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "build rejected",
			"points", points,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "build completed",
		"points", points,
		"nodes", stats.Nodes,
		"leaves", stats.Leaves,
		"max_depth", stats.MaxDepth,
		"forced_leaves", stats.ForcedLeaves,
		"duration", duration,
	)
}

// LogClear logs a Clear call.
func (l *Logger) LogClear(ctx context.Context, points int) {
	l.DebugContext(ctx, "tree cleared",
		"points", points,
	)
}

// LogBatch logs a batch query.
func (l *Logger) LogBatch(ctx context.Context, queries, results int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch query failed",
			"queries", queries,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch query completed",
		"queries", queries,
		"results", results,
		"duration", duration,
	)
}
