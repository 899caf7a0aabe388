// Package retry implements a bounded fixed-interval retry policy. The
// recording poller is its only caller today, but the timing knobs live here
// so termination behavior is testable without network calls.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned when every attempt failed.
var ErrExhausted = errors.New("retry: attempts exhausted")

type Policy struct {
	MaxAttempts int
	Interval    time.Duration

	// Sleep is swapped out in tests. Nil means time.Sleep with context
	// cancellation.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Do runs fn up to MaxAttempts times, waiting Interval between attempts.
// It returns nil on the first attempt that reports success, ErrExhausted
// once attempts run out, or the sleep error if the context is cancelled
// mid-wait. Individual attempt failures are not surfaced.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) bool) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for i := 0; i < attempts; i++ {
		if fn(ctx) {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if err := sleep(ctx, p.Interval); err != nil {
			return err
		}
	}
	return ErrExhausted
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
