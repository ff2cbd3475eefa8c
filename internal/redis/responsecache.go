package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseStore holds replayable responses for idempotent requests.
type ResponseStore struct {
	client *redis.Client
}

// NewResponseStore creates a new ResponseStore.
func NewResponseStore(client *redis.Client) *ResponseStore {
	return &ResponseStore{client: client}
}

// Get retrieves a cached response. A missing key is not an error.
func (s *ResponseStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}
	return data, nil
}

// Set stores a response with the given TTL.
func (s *ResponseStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, data, ttl).Err()
}
