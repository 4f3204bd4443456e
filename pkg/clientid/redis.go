package clientid

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "clients:"

// RedisTracker remembers issued identifiers in Redis for ttl.
type RedisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTracker creates a RedisTracker.
func NewRedisTracker(client *redis.Client, ttl time.Duration) *RedisTracker {
	return &RedisTracker{client: client, ttl: ttl}
}

// Track stores the identifier with its issue time.
func (t *RedisTracker) Track(ctx context.Context, id string) error {
	return t.client.Set(ctx, keyPrefix+id, time.Now().UTC().Format(time.RFC3339), t.ttl).Err()
}

// Known reports whether id was issued and has not expired.
func (t *RedisTracker) Known(ctx context.Context, id string) (bool, error) {
	n, err := t.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
