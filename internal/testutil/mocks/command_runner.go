// Package mocks provides test doubles for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// CommandRunner is a thread-safe test double for ports.CommandRunner.
// Commands without a registered result succeed with empty output.
type CommandRunner struct {
	mu      sync.RWMutex
	results map[string]ports.CommandResult
	errors  map[string]error
	calls   []ports.CommandCall
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results: make(map[string]ports.CommandResult),
		errors:  make(map[string]error),
		calls:   make([]ports.CommandCall, 0),
	}
}

// AddResult registers the result for a command, keyed by its rendered form
// (e.g. "docker-compose up -d").
func (m *CommandRunner) AddResult(command string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[command] = result
}

// Fail registers a command that exits with status 1.
func (m *CommandRunner) Fail(commands ...string) {
	for _, c := range commands {
		m.AddResult(c, ports.CommandResult{ExitCode: 1})
	}
}

// AddError registers a command that cannot be started.
func (m *CommandRunner) AddError(command string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[command] = err
}

// Run records the call and returns the registered result.
func (m *CommandRunner) Run(_ context.Context, cmd ports.Command, mode ports.OutputMode) (ports.CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ports.CommandCall{Command: cmd, Mode: mode})

	key := cmd.String()
	if err, ok := m.errors[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := m.results[key]; ok {
		return result, nil
	}
	return ports.CommandResult{}, nil
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Commands returns the rendered form of every recorded invocation, in order.
func (m *CommandRunner) Commands() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.Command.String()
	}
	return out
}

// Reset clears all registered results, errors, and recorded calls.
func (m *CommandRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string]ports.CommandResult)
	m.errors = make(map[string]error)
	m.calls = make([]ports.CommandCall, 0)
}

// Ensure CommandRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*CommandRunner)(nil)
