// Package sequence runs operation profiles: ordered lists of steps that drive
// external infrastructure commands one at a time.
package sequence

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// Kind identifies the type of a Step.
type Kind int

const (
	// KindRunCommand runs one command.
	KindRunCommand Kind = iota
	// KindRunWithFallback runs a primary command and a fallback on failure.
	KindRunWithFallback
	// KindRemoveDirIfExists removes a directory tree when present.
	KindRemoveDirIfExists
	// KindWait sleeps for a fixed settle interval.
	KindWait
	// KindCheckPrerequisite aborts the run when a command fails.
	KindCheckPrerequisite
	// KindRemoveImages removes container images matching a listing, if any.
	KindRemoveImages
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRunCommand:
		return "run"
	case KindRunWithFallback:
		return "run-with-fallback"
	case KindRemoveDirIfExists:
		return "remove-dir"
	case KindWait:
		return "wait"
	case KindCheckPrerequisite:
		return "check"
	case KindRemoveImages:
		return "remove-images"
	default:
		return "unknown"
	}
}

// Step is one unit of work in a profile. Steps are immutable values.
type Step interface {
	// Kind returns the step's discriminator.
	Kind() Kind
	// Describe returns a one-line summary used for plans and reports.
	Describe() string
}

// RunCommand runs a single command. A failure aborts the run only when Critical is set.
type RunCommand struct {
	Command ports.Command
	// Heading is logged before Description and opens a new phase of the operation.
	Heading     string
	Description string
	Critical    bool
	// WarnMessage replaces the default warning printed on failure.
	WarnMessage string
}

// Kind implements Step.
func (RunCommand) Kind() Kind { return KindRunCommand }

// Describe implements Step.
func (s RunCommand) Describe() string {
	if s.Critical {
		return s.Command.String() + " (critical)"
	}
	return s.Command.String()
}

// RunWithFallback tries Primary, then Fallback when Primary fails. It is never critical.
type RunWithFallback struct {
	Primary     ports.Command
	Fallback    ports.Command
	Description string
	WarnMessage string
}

// Kind implements Step.
func (RunWithFallback) Kind() Kind { return KindRunWithFallback }

// Describe implements Step.
func (s RunWithFallback) Describe() string {
	return fmt.Sprintf("%s || %s", s.Primary, s.Fallback)
}

// RemoveDirIfExists recursively removes Path. An absent path is a no-op.
type RemoveDirIfExists struct {
	Path string
	// Label names the directory in log lines, e.g. "vendor directory".
	Label string
}

// Kind implements Step.
func (RemoveDirIfExists) Kind() Kind { return KindRemoveDirIfExists }

// Describe implements Step.
func (s RemoveDirIfExists) Describe() string {
	return "rm -rf " + s.Path
}

// Wait blocks for a fixed interval. It is a settle delay, not a readiness check.
type Wait struct {
	Duration    time.Duration
	Description string
}

// Kind implements Step.
func (Wait) Kind() Kind { return KindWait }

// Describe implements Step.
func (s Wait) Describe() string {
	return "wait " + s.Duration.String()
}

// CheckPrerequisite runs Command silently. Failure always aborts the run.
type CheckPrerequisite struct {
	Command        ports.Command
	SuccessMessage string
	FailureMessage string
}

// Kind implements Step.
func (CheckPrerequisite) Kind() Kind { return KindCheckPrerequisite }

// Describe implements Step.
func (s CheckPrerequisite) Describe() string {
	return s.Command.String() + " (prerequisite)"
}

// RemoveImages captures the output of List and, when it names any images,
// runs Remove with those image IDs appended. An empty listing is a no-op.
type RemoveImages struct {
	List        ports.Command
	Remove      ports.Command
	Description string
}

// Kind implements Step.
func (RemoveImages) Kind() Kind { return KindRemoveImages }

// Describe implements Step.
func (s RemoveImages) Describe() string {
	return fmt.Sprintf("%s <ids from: %s>", s.Remove, s.List)
}

var (
	_ Step = RunCommand{}
	_ Step = RunWithFallback{}
	_ Step = RemoveDirIfExists{}
	_ Step = Wait{}
	_ Step = CheckPrerequisite{}
	_ Step = RemoveImages{}
)
