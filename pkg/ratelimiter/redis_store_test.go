package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/pkg/ratelimiter"
)

func newRedisStore(t *testing.T, clock *testClock) (*ratelimiter.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return ratelimiter.NewRedisStore(client, ratelimiter.WithRedisStoreClock(clock.Now)), mr
}

func TestRedisStore_ConsumeTokens(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	store, mr := newRedisStore(t, clock)
	ctx := context.Background()

	remaining, resetAt, err := store.ConsumeTokens(ctx, "1.2.3.4", 3, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
	assert.True(t, resetAt.Equal(clock.Now().Add(time.Minute)))

	remaining, _, err = store.ConsumeTokens(ctx, "1.2.3.4", 3, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, -1, remaining)

	assert.Equal(t, "2", mr.HGet("ratelimit:1.2.3.4", "tokens"))
	assert.Positive(t, mr.TTL("ratelimit:1.2.3.4"))

	clock.Advance(2 * time.Minute)
	remaining, _, err = store.ConsumeTokens(ctx, "1.2.3.4", 1, loginConfig)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestRedisStore_WithBucket(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	store, mr := newRedisStore(t, clock)
	b, err := ratelimiter.NewBucket(store, loginConfig)
	require.NoError(t, err)
	ctx := context.Background()

	for range 5 {
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		require.True(t, res.Allowed())
	}

	res, err := b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	require.NoError(t, b.Reset(ctx, "ip"))
	assert.False(t, mr.Exists("ratelimit:ip"))

	t.Run("unavailable", func(t *testing.T) {
		mr.Close()
		_, err := b.Allow(ctx, "ip")
		assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	})
}
