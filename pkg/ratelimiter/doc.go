// Package ratelimiter implements token bucket rate limiting with memory and
// Redis storage.
//
// A bucket holds at most Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes tokens; when not enough are left the
// request is refused and nothing is taken.
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	res, err := limiter.Allow(ctx, "login:"+ip)
//	if err != nil {
//		return err
//	}
//	if !res.Allowed() {
//		// retry in res.RetryAfter()
//	}
//
// # Stores
//
// MemoryStore keeps buckets in process memory. Run its cleanup loop next to
// the server so idle keys are dropped:
//
//	g.Go(store.Run(ctx))
//
// RedisStore keeps buckets in Redis hashes and updates them with a Lua
// script, so every instance shares the same limits:
//
//	store := ratelimiter.NewRedisStore(redisClient)
//
// Store errors are wrapped with ErrStoreUnavailable.
package ratelimiter
