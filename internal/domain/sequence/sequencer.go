package sequence

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// Sequencer walks a profile's steps strictly in order. Non-critical failures
// are recorded as warnings and the walk continues; critical failures and
// context cancellation end it with an *AbortError.
type Sequencer struct {
	runner  *Runner
	fs      ports.FileSystem
	sleeper ports.Sleeper
	logger  ports.Logger

	mu     sync.RWMutex
	interp *statekit.Interpreter[RunContext]
}

// NewSequencer creates a Sequencer.
func NewSequencer(commands ports.CommandRunner, fs ports.FileSystem, sleeper ports.Sleeper, logger ports.Logger) *Sequencer {
	return &Sequencer{
		runner:  NewRunner(commands, logger),
		fs:      fs,
		sleeper: sleeper,
		logger:  logger,
	}
}

// State returns the lifecycle state of the most recent run.
func (s *Sequencer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.interp == nil {
		return StateIdle
	}
	return State(s.interp.State().Value)
}

// Execute runs every step of the profile and returns the ordered results.
// The returned error is non-nil only when the run was aborted.
func (s *Sequencer) Execute(ctx context.Context, profile Profile) (Report, error) {
	if err := s.begin(profile.Name()); err != nil {
		return Report{Profile: profile.Name()}, fmt.Errorf("failed to build run state machine: %w", err)
	}

	report := Report{
		Profile: profile.Name(),
		Results: make([]RunResult, 0, profile.Len()),
	}

	for i, step := range profile.Steps() {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, RunResult{Index: i, Step: step, Status: StatusAborted, Detail: "interrupted"})
			return report, s.abort(profile.Name(), i, step, "interrupted", err)
		}

		start := time.Now()
		result, abortErr := s.executeStep(ctx, profile.Name(), i, step)
		result.Index = i
		result.Step = step
		result.Duration = time.Since(start)
		report.Results = append(report.Results, result)

		if abortErr != nil {
			s.send(EventAbort)
			return report, abortErr
		}
	}

	s.send(EventFinish)
	return report, nil
}

func (s *Sequencer) begin(profile string) error {
	interp, err := buildRunMachine(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.interp != nil {
		s.interp.Stop()
	}
	s.interp = interp
	s.mu.Unlock()

	interp.Start()
	interp.Send(statekit.Event{Type: EventStart})
	return nil
}

func (s *Sequencer) send(event statekit.EventType) {
	s.mu.RLock()
	interp := s.interp
	s.mu.RUnlock()
	if interp != nil {
		interp.Send(statekit.Event{Type: event})
	}
}

func (s *Sequencer) abort(profile string, index int, step Step, message string, err error) *AbortError {
	s.send(EventAbort)
	return &AbortError{Profile: profile, Index: index, Step: step, Message: message, Err: err}
}

// executeStep dispatches on the step kind. The returned AbortError is non-nil
// only for failures that must end the run.
func (s *Sequencer) executeStep(ctx context.Context, profile string, index int, step Step) (RunResult, *AbortError) {
	switch st := step.(type) {
	case CheckPrerequisite:
		return s.checkPrerequisite(ctx, profile, index, st)
	case RunCommand:
		return s.runCommand(ctx, profile, index, st)
	case RunWithFallback:
		return s.runWithFallback(ctx, st), nil
	case RemoveDirIfExists:
		return s.removeDir(ctx, st), nil
	case Wait:
		return s.wait(ctx, profile, index, st)
	case RemoveImages:
		return s.removeImages(ctx, st), nil
	default:
		detail := fmt.Sprintf("unsupported step type %T", step)
		s.logger.Warn(ctx, detail)
		return RunResult{Status: StatusWarned, Detail: detail}, nil
	}
}

func (s *Sequencer) checkPrerequisite(ctx context.Context, profile string, index int, st CheckPrerequisite) (RunResult, *AbortError) {
	outcome := s.runner.Probe(ctx, st.Command)
	if !outcome.OK() {
		msg := st.FailureMessage
		if msg == "" {
			msg = fmt.Sprintf("Prerequisite check failed: %s", st.Command)
		}
		s.logger.Error(ctx, msg, ports.F("error", outcome.Err()))
		return RunResult{Status: StatusAborted, Detail: msg}, &AbortError{
			Profile: profile, Index: index, Step: st, Message: msg, Err: outcome.Err(),
		}
	}

	if st.SuccessMessage != "" {
		s.logger.Info(ctx, st.SuccessMessage)
	}
	return RunResult{Status: StatusSuccess}, nil
}

func (s *Sequencer) runCommand(ctx context.Context, profile string, index int, st RunCommand) (RunResult, *AbortError) {
	if st.Heading != "" {
		s.logger.Info(ctx, st.Heading)
	}
	outcome := s.runner.Run(ctx, st.Command, st.Description)
	if outcome.OK() {
		return RunResult{Status: StatusSuccess}, nil
	}

	if st.Critical {
		msg := fmt.Sprintf("Failed to execute: %s", st.Command)
		s.logger.Error(ctx, msg, ports.F("error", outcome.Err()))
		return RunResult{Status: StatusAborted, Detail: msg}, &AbortError{
			Profile: profile, Index: index, Step: st, Message: msg, Err: outcome.Err(),
		}
	}

	msg := st.WarnMessage
	if msg == "" {
		msg = fmt.Sprintf("Warning: %s failed, but continuing...", st.Command)
	}
	s.logger.Warn(ctx, msg, ports.F("error", outcome.Err()))
	return RunResult{Status: StatusWarned, Detail: outcome.Err().Error()}, nil
}

func (s *Sequencer) runWithFallback(ctx context.Context, st RunWithFallback) RunResult {
	primary := s.runner.Run(ctx, st.Primary, st.Description)
	if primary.OK() {
		return RunResult{Status: StatusSuccess}
	}

	s.logger.Info(ctx, fmt.Sprintf("Retrying with: %s", st.Fallback), ports.F("error", primary.Err()))
	fallback := s.runner.Run(ctx, st.Fallback, "")
	if fallback.OK() {
		return RunResult{Status: StatusSuccess, Detail: "fallback succeeded"}
	}

	msg := st.WarnMessage
	if msg == "" {
		msg = fmt.Sprintf("Could not complete step: %s", strings.TrimSuffix(st.Description, "..."))
	}
	msg = fmt.Sprintf("%s (tried '%s' and '%s')", msg, st.Primary, st.Fallback)
	s.logger.Warn(ctx, msg, ports.F("error", fallback.Err()))
	return RunResult{Status: StatusWarned, Detail: msg}
}

func (s *Sequencer) removeDir(ctx context.Context, st RemoveDirIfExists) RunResult {
	if !s.fs.Exists(st.Path) {
		s.logger.Debug(ctx, "nothing to remove", ports.F("path", st.Path))
		return RunResult{Status: StatusSuccess, Detail: "absent"}
	}

	label := st.Label
	if label == "" {
		label = st.Path
	}
	s.logger.Info(ctx, fmt.Sprintf("Removing %s...", label))

	if err := s.fs.RemoveAll(st.Path); err != nil {
		msg := fmt.Sprintf("Could not remove %s", label)
		s.logger.Warn(ctx, msg, ports.F("path", st.Path), ports.F("error", err))
		return RunResult{Status: StatusWarned, Detail: err.Error()}
	}
	return RunResult{Status: StatusSuccess}
}

func (s *Sequencer) wait(ctx context.Context, profile string, index int, st Wait) (RunResult, *AbortError) {
	if st.Description != "" {
		s.logger.Info(ctx, st.Description)
	}
	if err := s.sleeper.Sleep(ctx, st.Duration); err != nil {
		return RunResult{Status: StatusAborted, Detail: "interrupted"}, &AbortError{
			Profile: profile, Index: index, Step: st, Message: "interrupted", Err: err,
		}
	}
	return RunResult{Status: StatusSuccess}, nil
}

func (s *Sequencer) removeImages(ctx context.Context, st RemoveImages) RunResult {
	if st.Description != "" {
		s.logger.Info(ctx, st.Description)
	}

	output, listed := s.runner.Capture(ctx, st.List)
	if !listed.OK() {
		msg := "Could not remove project images"
		s.logger.Warn(ctx, msg, ports.F("error", listed.Err()))
		return RunResult{Status: StatusWarned, Detail: listed.Err().Error()}
	}

	ids := uniqueFields(output)
	if len(ids) == 0 {
		s.logger.Info(ctx, "No project images to remove")
		return RunResult{Status: StatusSuccess, Detail: "no images"}
	}

	removed := s.runner.Run(ctx, st.Remove.With(ids...), "Removing project images...")
	if !removed.OK() {
		msg := fmt.Sprintf("Warning: %s failed, but continuing...", st.Remove)
		s.logger.Warn(ctx, msg, ports.F("error", removed.Err()))
		return RunResult{Status: StatusWarned, Detail: removed.Err().Error()}
	}
	return RunResult{Status: StatusSuccess, Detail: fmt.Sprintf("%d images", len(ids))}
}

// uniqueFields splits on whitespace and drops repeated entries, keeping order.
// An image tagged twice is listed twice by the runtime.
func uniqueFields(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
