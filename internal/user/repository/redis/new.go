package redis

import (
	"time"

	"inventory-srv/internal/user/repository"
	"inventory-srv/pkg/log"
	pkgRedis "inventory-srv/pkg/redis"
)

const (
	keyPrefix  = "inventory:user:"
	DefaultTTL = 5 * time.Minute
)

type implRepository struct {
	client pkgRedis.IRedis
	ttl    time.Duration
	l      log.Logger
}

// New - Factory function. A non-positive ttl uses DefaultTTL.
func New(client pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.CacheRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		client: client,
		ttl:    ttl,
		l:      l,
	}
}
