package sequence

import (
	"github.com/felixgeelhaar/statekit"
)

// State is the lifecycle state of a sequencer run.
type State string

// Machine state names. Kept untyped so they convert to statekit's identifiers.
const (
	stateIdle      = "idle"
	stateRunning   = "running"
	stateCompleted = "completed"
	stateAborted   = "aborted"
)

const (
	// StateIdle means no run has started.
	StateIdle State = stateIdle
	// StateRunning means steps are being executed.
	StateRunning State = stateRunning
	// StateCompleted means every step ran; some may have warned.
	StateCompleted State = stateCompleted
	// StateAborted means a critical step failed or the run was interrupted.
	StateAborted State = stateAborted
)

// Run lifecycle events.
const (
	EventStart  statekit.EventType = "START"
	EventFinish statekit.EventType = "FINISH"
	EventAbort  statekit.EventType = "ABORT"
	EventReset  statekit.EventType = "RESET"
)

// RunContext is the statekit context of a run.
type RunContext struct {
	Profile string
}

func buildRunMachine(profile string) (*statekit.Interpreter[RunContext], error) {
	machine, err := statekit.NewMachine[RunContext]("devstack-run").
		WithInitial(stateIdle).
		WithContext(RunContext{Profile: profile}).
		State(stateIdle).
		On(EventStart).Target(stateRunning).Done().
		State(stateRunning).
		On(EventFinish).Target(stateCompleted).
		On(EventAbort).Target(stateAborted).Done().
		State(stateCompleted).
		On(EventReset).Target(stateIdle).Done().
		State(stateAborted).
		On(EventReset).Target(stateIdle).Done().
		Build()
	if err != nil {
		return nil, err
	}

	return statekit.NewInterpreter(machine), nil
}
