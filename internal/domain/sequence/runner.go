package sequence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// Runner executes one external command and classifies the result. It never
// turns a failure into a program-terminating condition; callers decide.
type Runner struct {
	commands ports.CommandRunner
	logger   ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(commands ports.CommandRunner, logger ports.Logger) *Runner {
	return &Runner{commands: commands, logger: logger}
}

// Run logs description (when not empty) and runs cmd with the operator's
// terminal attached.
func (r *Runner) Run(ctx context.Context, cmd ports.Command, description string) Outcome {
	if description != "" {
		r.logger.Info(ctx, description)
	}
	outcome, _ := r.exec(ctx, cmd, ports.OutputStream)
	return outcome
}

// Probe runs cmd with its output discarded.
func (r *Runner) Probe(ctx context.Context, cmd ports.Command) Outcome {
	outcome, _ := r.exec(ctx, cmd, ports.OutputDiscard)
	return outcome
}

// Capture runs cmd and returns its trimmed stdout.
func (r *Runner) Capture(ctx context.Context, cmd ports.Command) (string, Outcome) {
	outcome, result := r.exec(ctx, cmd, ports.OutputCapture)
	return strings.TrimSpace(result.Stdout), outcome
}

func (r *Runner) exec(ctx context.Context, cmd ports.Command, mode ports.OutputMode) (Outcome, ports.CommandResult) {
	r.logger.Debug(ctx, "exec", ports.F("command", cmd.String()), ports.F("mode", mode.String()))

	result, err := r.commands.Run(ctx, cmd, mode)
	if err != nil {
		if errors.Is(err, ports.ErrCommandNotFound) {
			err = fmt.Errorf("%s: command not found", cmd.Name)
		}
		r.logger.Debug(ctx, "command could not run", ports.F("command", cmd.String()), ports.F("error", err))
		return Failed(err), result
	}
	if !result.Success() {
		err := fmt.Errorf("%s exited with status %d", cmd, result.ExitCode)
		r.logger.Debug(ctx, "command failed", ports.F("command", cmd.String()), ports.F("exit_code", result.ExitCode))
		return Failed(err), result
	}
	return Succeeded(), result
}
