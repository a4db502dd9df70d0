package lloyd

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lloyd-specific context.
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

// WithEpochs adds an epochs field to the logger.
func (l *Logger) WithEpochs(epochs int) *Logger {
	return &Logger{
		Logger: l.Logger.With("epochs", epochs),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRun logs a completed clustering run.
func (l *Logger) LogRun(ctx context.Context, points, k, epochs int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"points", points,
			"k", k,
			"epochs", epochs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"points", points,
			"k", k,
			"epochs", epochs,
			"duration", d,
		)
	}
}

// LogEpoch logs the statistics of one epoch.
func (l *Logger) LogEpoch(stats EpochStats) {
	l.Debug("epoch completed",
		"epoch", stats.Epoch,
		"reassigned", stats.Reassigned,
		"empty", len(stats.Empty),
		"inertia", stats.Inertia,
		"duration", stats.Duration,
	)
}

// LogEmptyCluster logs a cluster that was left without points.
func (l *Logger) LogEmptyCluster(ctx context.Context, epoch, cluster int, policy EmptyClusterPolicy) {
	l.WarnContext(ctx, "empty cluster",
		"epoch", epoch,
		"cluster", cluster,
		"policy", policy.String(),
	)
}

// LogLoad logs reading a point table.
func (l *Logger) LogLoad(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "points loaded",
			"name", name,
			"count", count,
		)
	}
}

// LogStore logs writing a labeled point table.
func (l *Logger) LogStore(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "store failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "labels stored",
			"name", name,
			"count", count,
		)
	}
}
