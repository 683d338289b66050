package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker serializes duplicate submissions of the same logical operation.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisLocker takes short-lived SETNX locks. When Redis is unreachable the
// lock degrades to a no-op; the database transaction remains the hard guard.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if l.client == nil {
		return true, nil
	}
	ok, err := l.client.SetNX(ctx, fmt.Sprintf("lock:%s", key), 1, ttl).Result()
	if err != nil {
		return true, nil
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	if l.client == nil {
		return nil
	}
	return l.client.Del(ctx, fmt.Sprintf("lock:%s", key)).Err()
}
