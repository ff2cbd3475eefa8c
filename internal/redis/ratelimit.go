package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// RateLimitStore is a fixed-window limiter backed by Redis, shared across
// instances. INCR is atomic, so concurrent requests for the same key cannot
// slip past the limit.
type RateLimitStore struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimitStore creates a store allowing limit requests per key per window.
func NewRateLimitStore(client *redis.Client, limit int, window time.Duration) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow increments the key's window counter and reports whether it is within
// budget. The window TTL is attached on first increment; once it expires the
// key vanishes and the next request starts a fresh window.
func (s *RateLimitStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitPrefix + key

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX: only attach a TTL when the key has none, i.e. on window start.
	// Re-running it also repairs a key left without TTL by a crashed instance.
	pipe.ExpireNX(ctx, redisKey, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= int64(s.limit), nil
}
