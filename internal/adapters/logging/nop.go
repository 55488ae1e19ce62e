// Package logging provides the ports.Logger implementations used by devstack:
// ConsoleLogger for operator output and NopLogger for quiet runs.
package logging

import (
	"context"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// NopLogger discards debug, info and warning lines. Errors are forwarded to
// the logger given with ErrorsTo, so a quiet run still says why it stopped.
type NopLogger struct {
	level ports.Level
	errs  ports.Logger
}

// NopLoggerOption configures a NopLogger.
type NopLoggerOption func(*NopLogger)

// ErrorsTo forwards Error calls to l.
func ErrorsTo(l ports.Logger) NopLoggerOption {
	return func(n *NopLogger) {
		n.errs = l
	}
}

// NewNopLogger creates a logger that drops everything below error level.
func NewNopLogger(opts ...NopLoggerOption) *NopLogger {
	l := &NopLogger{level: ports.LevelError}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug does nothing.
func (l *NopLogger) Debug(_ context.Context, _ string, _ ...ports.Field) {}

// Info does nothing.
func (l *NopLogger) Info(_ context.Context, _ string, _ ...ports.Field) {}

// Warn does nothing.
func (l *NopLogger) Warn(_ context.Context, _ string, _ ...ports.Field) {}

// Error forwards to the error logger, if one is set.
func (l *NopLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	if l.errs != nil {
		l.errs.Error(ctx, msg, fields...)
	}
}

// With attaches fields to forwarded errors.
func (l *NopLogger) With(fields ...ports.Field) ports.Logger {
	if l.errs == nil {
		return l
	}
	return &NopLogger{level: l.level, errs: l.errs.With(fields...)}
}

// Level returns the log level.
func (l *NopLogger) Level() ports.Level {
	return l.level
}

// SetLevel sets the log level. Lines below error level are dropped regardless.
func (l *NopLogger) SetLevel(level ports.Level) {
	l.level = level
}

var _ ports.Logger = (*NopLogger)(nil)
