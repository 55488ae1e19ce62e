package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandResult_Success(t *testing.T) {
	t.Parallel()

	assert.True(t, CommandResult{ExitCode: 0, Stdout: "output"}.Success())
	assert.False(t, CommandResult{ExitCode: 1, Stderr: "error"}.Success())
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"bare", Cmd("docker"), "docker"},
		{"with args", Cmd("docker", "system", "prune", "-f"), "docker system prune -f"},
		{"glob kept verbatim", Cmd("docker", "images", "-q", "twigs*"), "docker images -q twigs*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	single := Split("docker-compose")
	assert.Equal(t, Cmd("docker-compose"), single)
	assert.Nil(t, single.Args)
	assert.Equal(t, Cmd("docker", "compose"), Split("  docker   compose "))
	assert.True(t, Split("   ").IsZero())
}

func TestCommand_WithDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := Command{Name: "docker", Args: make([]string, 1, 8)}
	base.Args[0] = "compose"

	up := base.With("up", "-d")
	down := base.With("down")

	assert.Equal(t, "docker compose up -d", up.String())
	assert.Equal(t, "docker compose down", down.String())
	assert.Equal(t, "docker compose", base.String())
}

func TestOutputMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stream", OutputStream.String())
	assert.Equal(t, "discard", OutputDiscard.String())
	assert.Equal(t, "capture", OutputCapture.String())
	assert.Equal(t, "unknown", OutputMode(42).String())
}
