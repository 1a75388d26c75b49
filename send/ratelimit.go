package send

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// IntervalLimiter enforces a fixed minimum delay between successive sends
// using a token bucket with a burst of 1. Mail platforms throttle by
// messages per unit time, so there is no value in allowing bursts.
type IntervalLimiter struct {
	limiter *rate.Limiter
}

// NewIntervalLimiter creates a limiter releasing one send per interval.
// A non-positive interval disables pacing.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	if interval <= 0 {
		return &IntervalLimiter{}
	}
	return &IntervalLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next send is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *IntervalLimiter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}
