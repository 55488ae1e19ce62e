package mocks

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level  ports.Level
	Msg    string
	Fields []ports.Field
}

type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Logger records every log call. Loggers derived with With share the record.
type Logger struct {
	sink   *logSink
	fields []ports.Field
	level  ports.Level
}

// NewLogger creates a new recording Logger at debug level.
func NewLogger() *Logger {
	return &Logger{sink: &logSink{}, level: ports.LevelDebug}
}

// Debug records a debug message.
func (l *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelDebug, msg, fields)
}

// Info records an informational message.
func (l *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelInfo, msg, fields)
}

// Warn records a warning message.
func (l *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelWarn, msg, fields)
}

// Error records an error message.
func (l *Logger) Error(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelError, msg, fields)
}

// With returns a logger that records into the same sink with extra fields.
func (l *Logger) With(fields ...ports.Field) ports.Logger {
	merged := make([]ports.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{sink: l.sink, fields: merged, level: l.level}
}

// Level returns the minimum log level.
func (l *Logger) Level() ports.Level {
	return l.level
}

// SetLevel sets the minimum log level. Recording is not filtered.
func (l *Logger) SetLevel(level ports.Level) {
	l.level = level
}

// Entries returns all recorded entries.
func (l *Logger) Entries() []LogEntry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	out := make([]LogEntry, len(l.sink.entries))
	copy(out, l.sink.entries)
	return out
}

// Messages returns the messages recorded at the given level.
func (l *Logger) Messages(level ports.Level) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

func (l *Logger) record(level ports.Level, msg string, fields []ports.Field) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	all := make([]ports.Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)
	l.sink.entries = append(l.sink.entries, LogEntry{Level: level, Msg: msg, Fields: all})
}

// Ensure Logger implements ports.Logger.
var _ ports.Logger = (*Logger)(nil)
