// Package clock provides injectable time primitives for polling loops and status derivation.
package clock

import (
	"context"
	"time"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// NowFunc returns the current time.
type NowFunc func() time.Time

// SleepWithContext waits for the duration or returns early if the context is canceled.
// A non-positive duration only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UTCNow is the default NowFunc.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// Fixed returns a NowFunc that always reports t in UTC.
func Fixed(t time.Time) NowFunc {
	t = t.UTC()
	return func() time.Time { return t }
}
