package sequence

import "fmt"

// AbortError is returned when a critical step fails or the run is interrupted.
// It is the only failure that crosses the sequencer boundary.
type AbortError struct {
	Profile string
	Index   int
	Step    Step
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *AbortError) Error() string {
	msg := fmt.Sprintf("%s aborted at step %d (%s)", e.Profile, e.Index+1, e.Step.Describe())
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying failure.
func (e *AbortError) Unwrap() error {
	return e.Err
}
