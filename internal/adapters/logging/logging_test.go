package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, opts ...ConsoleLoggerOption) *ConsoleLogger {
	base := []ConsoleLoggerOption{WithOutput(buf), WithClock(fixedNow)}
	return NewConsoleLogger(append(base, opts...)...)
}

func TestNopLogger_DropsStatusLines(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	assert.Same(t, logger, logger.With(ports.F("key", "value")))
	assert.Equal(t, ports.LevelError, logger.Level())
}

func TestNopLogger_ForwardsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewNopLogger(ErrorsTo(newTestLogger(&buf)))
	ctx := context.Background()

	logger.Info(ctx, "Starting containers...")
	logger.Warn(ctx, "Clearing cache failed")
	logger.With(ports.F("run_id", "abc")).Error(ctx, "Docker is not running.")

	out := buf.String()
	assert.Contains(t, out, "[ERROR] Docker is not running.")
	assert.NotContains(t, out, "Starting containers...")
	assert.NotContains(t, out, "Clearing cache failed")
}

func TestNopLogger_SetLevel(t *testing.T) {
	logger := NewNopLogger()
	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}

func TestConsoleLogger_InfoHasTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info(context.Background(), "Starting containers...")

	assert.Equal(t, "[2026-10-16T09:30:00.000Z] Starting containers...\n", buf.String())
}

func TestConsoleLogger_WarnAndErrorPrefixes(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Warn(context.Background(), "No existing containers to stop")
	logger.Error(context.Background(), "Docker is not running. Please start Docker first.")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[WARN] No existing containers to stop", lines[0])
	assert.Equal(t, "[ERROR] Docker is not running. Please start Docker first.", lines[1])
}

func TestConsoleLogger_FieldsOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info(context.Background(), "step", ports.F("profile", "setup"))
	assert.NotContains(t, buf.String(), "profile=setup")

	buf.Reset()
	logger.SetLevel(ports.LevelDebug)
	logger.Info(context.Background(), "step", ports.F("profile", "setup"), ports.F("index", 2))
	assert.Contains(t, buf.String(), "profile=setup index=2")
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, WithJSONFormat(true))

	logger.Warn(context.Background(), "step failed", ports.F("command", "docker-compose down"), ports.F("error", errors.New("exit status 1")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "step failed", entry["msg"])
	assert.Equal(t, "docker-compose down", entry["command"])
	assert.Equal(t, "exit status 1", entry["error"])
	assert.Equal(t, "2026-10-16T09:30:00Z", entry["time"])
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, WithLevel(ports.LevelWarn))
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")
	assert.Contains(t, buf.String(), "[WARN] warn")
	assert.Contains(t, buf.String(), "[ERROR] error")
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, WithJSONFormat(true))

	child := logger.With(ports.F("run_id", "abc"))
	child.Info(context.Background(), "hello", ports.F("step", 1))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["run_id"])
	assert.EqualValues(t, 1, entry["step"])
}

func TestConsoleLogger_With_DoesNotModifyOriginal(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, WithJSONFormat(true))

	_ = logger.With(ports.F("run_id", "abc"))
	logger.Info(context.Background(), "plain")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["run_id"]
	assert.False(t, ok)
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	logger := NewConsoleLogger(WithOutput(&bytes.Buffer{}))
	assert.Equal(t, ports.LevelInfo, logger.Level())

	logger.SetLevel(ports.LevelError)
	assert.Equal(t, ports.LevelError, logger.Level())
}
