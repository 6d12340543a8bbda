//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

package sampler

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and the inter-cycle sleep so tests can
// drive many cycles without real delay and can simulate external
// cancellation deterministically.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
	// Sleep blocks for d or until ctx is canceled, whichever comes first.
	Sleep(ctx context.Context, d time.Duration)
}

// SystemClock implements Clock using the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep suspends execution for d, returning early if ctx is canceled.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
