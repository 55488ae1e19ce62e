package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/felixgeelhaar/devstack/internal/ports"
)

// Sleeper records requested durations and returns immediately.
type Sleeper struct {
	mu    sync.Mutex
	slept []time.Duration
	err   error
}

// NewSleeper creates a new Sleeper mock.
func NewSleeper() *Sleeper {
	return &Sleeper{}
}

// FailWith makes every Sleep call return err, as if the wait was interrupted.
func (s *Sleeper) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Sleep records d.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slept = append(s.slept, d)
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

// Slept returns every requested duration, in order.
func (s *Sleeper) Slept() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]time.Duration, len(s.slept))
	copy(out, s.slept)
	return out
}

// Ensure Sleeper implements ports.Sleeper.
var _ ports.Sleeper = (*Sleeper)(nil)
