package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/pkg/ratelimiter"
)

func TestMemoryStore_ConsumeTokens(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreClock(clock.Now))
	ctx := context.Background()

	remaining, resetAt, err := store.ConsumeTokens(ctx, "k", 3, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
	assert.Equal(t, clock.Now().Add(time.Minute), resetAt)

	remaining, _, err = store.ConsumeTokens(ctx, "k", 3, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, -1, remaining, "deficit reported, nothing taken")

	remaining, _, err = store.ConsumeTokens(ctx, "k", 0, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	clock.Advance(10 * time.Hour)
	remaining, _, err = store.ConsumeTokens(ctx, "k", 0, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining, "refill is capped at capacity")
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithMemoryStoreClock(clock.Now),
		ratelimiter.WithStaleAfter(time.Hour),
	)
	ctx := context.Background()

	_, _, err := store.ConsumeTokens(ctx, "old", 1, loginConfig)
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, loginConfig)
	require.NoError(t, err)

	assert.Equal(t, 1, store.RemoveStale())

	stats := store.Stats()
	assert.Equal(t, int64(2), stats.BucketsCreated)
	assert.Equal(t, int64(1), stats.BucketsRemoved)
	assert.Equal(t, 1, stats.ActiveBuckets)
}

func TestMemoryStore_StartStop(t *testing.T) {
	t.Parallel()

	t.Run("start and stop", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10 * time.Millisecond))

		errCh := make(chan error, 1)
		go func() { errCh <- store.Start(context.Background()) }()

		require.Eventually(t, func() bool { return store.Stats().IsRunning }, time.Second, 5*time.Millisecond)
		assert.NoError(t, store.Healthcheck(context.Background()))
		assert.ErrorIs(t, store.Start(context.Background()), ratelimiter.ErrAlreadyStarted)

		require.NoError(t, store.Stop())
		assert.ErrorIs(t, <-errCh, context.Canceled)
		assert.False(t, store.Stats().IsRunning)
		assert.Error(t, store.Healthcheck(context.Background()))
	})

	t.Run("stop without start", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, ratelimiter.NewMemoryStore().Stop(), ratelimiter.ErrNotStarted)
	})

	t.Run("cleanup disabled", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		assert.ErrorIs(t, store.Start(context.Background()), ratelimiter.ErrCleanupDisabled)
		assert.NoError(t, store.Healthcheck(context.Background()))
	})
}

func TestMemoryStore_Run(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- store.Run(ctx)() }()

	require.Eventually(t, func() bool { return store.Stats().IsRunning }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}
}
