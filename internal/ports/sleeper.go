package ports

import (
	"context"
	"time"
)

// Sleeper suspends the caller for a fixed duration.
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}
