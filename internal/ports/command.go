// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"errors"
	"strings"
)

// ErrCommandNotFound is wrapped by runners when the executable cannot be spawned
// because it is not installed or not on PATH.
var ErrCommandNotFound = errors.New("command not found")

// Command is an external program invocation. Arguments are passed verbatim,
// no shell is involved.
type Command struct {
	Name string
	Args []string
}

// Cmd creates a new Command.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Split builds a Command from a whitespace separated string such as "docker compose".
// It returns the zero Command for blank input.
func Split(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	if len(fields) == 1 {
		return Cmd(fields[0])
	}
	return Cmd(fields[0], fields[1:]...)
}

// With returns a copy of the command with extra arguments appended.
func (c Command) With(args ...string) Command {
	all := make([]string, 0, len(c.Args)+len(args))
	all = append(all, c.Args...)
	all = append(all, args...)
	return Command{Name: c.Name, Args: all}
}

// IsZero reports whether the command has no executable.
func (c Command) IsZero() bool {
	return c.Name == ""
}

// String renders the command the way an operator would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// OutputMode selects what happens to a command's standard streams.
type OutputMode int

const (
	// OutputStream inherits the operator's stdin, stdout and stderr.
	OutputStream OutputMode = iota
	// OutputDiscard runs the command silently.
	OutputDiscard
	// OutputCapture collects stdout and stderr into the CommandResult.
	OutputCapture
)

// String returns the string representation of the output mode.
func (m OutputMode) String() string {
	switch m {
	case OutputStream:
		return "stream"
	case OutputDiscard:
		return "discard"
	case OutputCapture:
		return "capture"
	default:
		return "unknown"
	}
}

// CommandResult represents the result of executing a command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a command invocation.
type CommandCall struct {
	Command Command
	Mode    OutputMode
}

// CommandRunner executes external commands.
// A nonzero exit is reported through CommandResult; the error return is reserved
// for commands that could not be started at all.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command, mode OutputMode) (CommandResult, error)
}
