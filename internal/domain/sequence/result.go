package sequence

import (
	"errors"
	"time"
)

// Outcome is the classification of one command execution.
type Outcome struct {
	err error
}

// Succeeded returns a successful Outcome.
func Succeeded() Outcome {
	return Outcome{}
}

// Failed returns a failed Outcome carrying the failure detail.
func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("command failed")
	}
	return Outcome{err: err}
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool {
	return o.err == nil
}

// Err returns the failure detail, or nil on success.
func (o Outcome) Err() error {
	return o.err
}

// Status is the recorded result of a step.
type Status int

const (
	// StatusSuccess means the step did its work or had nothing to do.
	StatusSuccess Status = iota
	// StatusWarned means the step failed and the run continued.
	StatusWarned
	// StatusAborted means the step failed and ended the run.
	StatusAborted
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarned:
		return "warned"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RunResult captures the outcome of executing a single step.
type RunResult struct {
	Index    int
	Step     Step
	Status   Status
	Detail   string
	Duration time.Duration
}

// Report is the ordered list of results for one profile run.
type Report struct {
	Profile string
	Results []RunResult
}

// Len returns the number of steps that ran.
func (r Report) Len() int {
	return len(r.Results)
}

// Warnings returns the number of steps that finished with a warning.
func (r Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusWarned {
			n++
		}
	}
	return n
}

// Aborted reports whether the run ended on a critical failure.
func (r Report) Aborted() bool {
	n := len(r.Results)
	return n > 0 && r.Results[n-1].Status == StatusAborted
}

// Duration returns the summed duration of all steps.
func (r Report) Duration() time.Duration {
	var total time.Duration
	for _, res := range r.Results {
		total += res.Duration
	}
	return total
}
