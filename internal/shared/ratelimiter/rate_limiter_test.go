package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the limiter sleeps.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) sleep(_ context.Context, d time.Duration) error {
	f.sleeps = append(f.sleeps, d)
	f.t = f.t.Add(d)
	return nil
}

func newFake(limit int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 11, 17, 10, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, time.Minute)
	rl.now = clock.now
	rl.sleep = clock.sleep
	rl.lastReset = clock.t
	return rl, clock
}

func TestRateLimiter_WaitsWhenLimitExceeded(t *testing.T) {
	t.Parallel()
	rl, clock := newFake(2)
	ctx := context.Background()

	require.NoError(t, rl.Wait(ctx))
	require.NoError(t, rl.Wait(ctx))
	assert.Empty(t, clock.sleeps)

	clock.t = clock.t.Add(10 * time.Second)
	require.NoError(t, rl.Wait(ctx))
	require.Len(t, clock.sleeps, 1)
	assert.Equal(t, 50*time.Second, clock.sleeps[0])
	assert.Equal(t, 1, rl.count)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()
	rl, clock := newFake(1)
	ctx := context.Background()

	require.NoError(t, rl.Wait(ctx))
	clock.t = clock.t.Add(time.Minute)
	require.NoError(t, rl.Wait(ctx))
	assert.Empty(t, clock.sleeps)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()
	rl, clock := newFake(0)

	for range 5 {
		require.NoError(t, rl.Wait(context.Background()))
	}
	assert.Empty(t, clock.sleeps)
}

func TestRateLimiter_ContextCancelled(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(1, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, rl.Wait(ctx))
	cancel()
	assert.ErrorIs(t, rl.Wait(ctx), context.Canceled)
}
