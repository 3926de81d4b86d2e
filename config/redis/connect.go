package redis

import (
	"context"
	"fmt"

	"inventory-srv/config"
	"inventory-srv/pkg/redis"
)

// Connect returns nil without error when Redis is disabled.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := redis.New(ctx, redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	return client, nil
}

// Disconnect closes the Redis connection
func Disconnect(client redis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
