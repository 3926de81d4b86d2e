package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user/repository"
	pkgRedis "inventory-srv/pkg/redis"
)

type cachedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func key(id string) string {
	return keyPrefix + id
}

func (r *implRepository) Get(ctx context.Context, id string) (model.UserSummary, error) {
	val, err := r.client.Get(ctx, key(id))
	if errors.Is(err, pkgRedis.ErrKeyNotFound) {
		return model.UserSummary{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "user.repository.redis.Get: %v", err)
		return model.UserSummary{}, fmt.Errorf("Get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal([]byte(val), &cu); err != nil {
		r.l.Errorf(ctx, "user.repository.redis.Get: decode: %v", err)
		return model.UserSummary{}, fmt.Errorf("Get: decode: %w", err)
	}

	return model.UserSummary{
		ID:    cu.ID,
		Email: cu.Email,
		Name:  cu.Name,
		Role:  cu.Role,
	}, nil
}

func (r *implRepository) Set(ctx context.Context, u model.UserSummary) error {
	b, err := json.Marshal(cachedUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	})
	if err != nil {
		r.l.Errorf(ctx, "user.repository.redis.Set: encode: %v", err)
		return fmt.Errorf("Set: encode: %w", err)
	}

	if err := r.client.Set(ctx, key(u.ID), b, r.ttl); err != nil {
		r.l.Errorf(ctx, "user.repository.redis.Set: %v", err)
		return fmt.Errorf("Set: %w", err)
	}
	return nil
}
