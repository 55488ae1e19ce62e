// Package command provides command execution adapters.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// RealRunner executes actual commands.
type RealRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	dir    string
}

// RunnerOption configures a RealRunner.
type RunnerOption func(*RealRunner)

// WithStdio overrides the streams used in ports.OutputStream mode (default: os.Stdin, os.Stdout, os.Stderr).
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *RealRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithDir sets the working directory for every command.
func WithDir(dir string) RunnerOption {
	return func(r *RealRunner) {
		r.dir = dir
	}
}

// NewRealRunner creates a new RealRunner.
func NewRealRunner(opts ...RunnerOption) *RealRunner {
	r := &RealRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a command and returns the result.
func (r *RealRunner) Run(ctx context.Context, c ports.Command, mode ports.OutputMode) (ports.CommandResult, error) {
	if c.IsZero() {
		return ports.CommandResult{}, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = r.dir

	var stdout, stderr strings.Builder
	switch mode {
	case ports.OutputStream:
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	case ports.OutputCapture:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	case ports.OutputDiscard:
		// nil streams are connected to the null device
	}

	err := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			if result.ExitCode < 0 {
				// killed by a signal
				return result, fmt.Errorf("%s: %w", c.Name, err)
			}
			return result, nil
		}
		if IsCommandNotFound(err) {
			return result, fmt.Errorf("%s: %w", c.Name, ports.ErrCommandNotFound)
		}
		return result, err
	}

	return result, nil
}

// Ensure RealRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*RealRunner)(nil)
