package redis

import (
	"context"
	"time"
)

// IRedis defines the Redis operations used by the service.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get returns ErrKeyNotFound when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}
