// Package ratelimiter spaces out calls to an external service.
package ratelimiter

import (
	"context"
	"log/slog"
	"time"
)

// Waiter blocks until the next call is allowed.
type Waiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter allows at most limit calls per interval using a fixed window.
type RateLimiter struct {
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Waiter = (*RateLimiter)(nil)

// NewRateLimiter creates a RateLimiter. A non-positive limit disables limiting.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
		sleep:     sleepCtx,
	}
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

// Wait counts one call and sleeps until the window resets when the limit is exceeded.
// It returns ctx.Err() if the context ends while sleeping.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limit <= 0 {
		return ctx.Err()
	}

	now := rl.now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		return nil
	}

	if d := rl.interval - now.Sub(rl.lastReset); d > 0 {
		slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", d)
		if err := rl.sleep(ctx, d); err != nil {
			return err
		}
	}
	rl.count = 1
	rl.lastReset = rl.now()
	return nil
}
