package command

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// DryRunRunner prints commands instead of executing them. Every command succeeds
// and captured output is empty, so conditional steps take their no-op branch.
type DryRunRunner struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDryRunRunner creates a DryRunRunner writing to out.
func NewDryRunRunner(out io.Writer) *DryRunRunner {
	return &DryRunRunner{out: out}
}

// Run prints the command prefixed with "+ ".
func (r *DryRunRunner) Run(_ context.Context, c ports.Command, _ ports.OutputMode) (ports.CommandResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, "+ %s\n", c.String())
	return ports.CommandResult{}, nil
}

// Ensure DryRunRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*DryRunRunner)(nil)
