// Package clock provides time-based adapters.
package clock

import (
	"context"
	"time"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// RealSleeper blocks on a timer.
type RealSleeper struct{}

// NewRealSleeper creates a new RealSleeper.
func NewRealSleeper() *RealSleeper {
	return &RealSleeper{}
}

// Sleep waits for d, returning early with ctx.Err() if the context ends first.
func (s *RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopSleeper returns immediately. Used for dry runs.
type NopSleeper struct{}

// Sleep does nothing.
func (NopSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

var (
	_ ports.Sleeper = (*RealSleeper)(nil)
	_ ports.Sleeper = NopSleeper{}
)
