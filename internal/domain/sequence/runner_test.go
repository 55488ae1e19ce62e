package sequence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/devstack/internal/ports"
	"github.com/felixgeelhaar/devstack/internal/testutil/mocks"
)

func TestRunner_RunLogsDescriptionAndStreams(t *testing.T) {
	commands := mocks.NewCommandRunner()
	logger := mocks.NewLogger()
	r := NewRunner(commands, logger)

	outcome := r.Run(context.Background(), ports.Cmd("docker-compose", "up", "-d"), "Starting containers...")

	assert.True(t, outcome.OK())
	assert.Equal(t, []string{"Starting containers..."}, logger.Messages(ports.LevelInfo))
	assert.Equal(t, ports.OutputStream, commands.Calls()[0].Mode)
}

func TestRunner_FailureIsReturnedNotWarned(t *testing.T) {
	commands := mocks.NewCommandRunner()
	commands.AddResult("false", ports.CommandResult{ExitCode: 2})
	logger := mocks.NewLogger()
	r := NewRunner(commands, logger)

	outcome := r.Run(context.Background(), ports.Cmd("false"), "")

	assert.False(t, outcome.OK())
	assert.EqualError(t, outcome.Err(), "false exited with status 2")
	assert.Empty(t, logger.Messages(ports.LevelWarn), "the caller decides how to report failures")
}

func TestRunner_NotFoundDetail(t *testing.T) {
	commands := mocks.NewCommandRunner()
	commands.AddError("docker info", ports.ErrCommandNotFound)
	r := NewRunner(commands, mocks.NewLogger())

	outcome := r.Probe(context.Background(), ports.Cmd("docker", "info"))

	assert.EqualError(t, outcome.Err(), "docker: command not found")
	assert.Equal(t, ports.OutputDiscard, commands.Calls()[0].Mode)
}

func TestRunner_CaptureTrims(t *testing.T) {
	commands := mocks.NewCommandRunner()
	commands.AddResult("docker images -q twigs*", ports.CommandResult{Stdout: "  abc\n\n"})
	r := NewRunner(commands, mocks.NewLogger())

	out, outcome := r.Capture(context.Background(), ports.Cmd("docker", "images", "-q", "twigs*"))

	assert.True(t, outcome.OK())
	assert.Equal(t, "abc", out)
}
