package redis

import (
	"context"
	"testing"
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user/repository"
	"inventory-srv/pkg/log"
	pkgRedis "inventory-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCacheRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	repo := New(client, time.Minute, log.NewNop())
	ctx := context.Background()

	_, err := repo.Get(ctx, "u-1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	u := model.UserSummary{ID: "u-1", Email: "alice@example.com", Name: "Alice", Role: model.RoleUser}
	require.NoError(t, repo.Set(ctx, u))

	raw, err := mr.Get("inventory:user:u-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "password")
	assert.Equal(t, time.Minute, mr.TTL("inventory:user:u-1"))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	mr.FastForward(2 * time.Minute)
	_, err = repo.Get(ctx, "u-1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestCacheRepositoryDefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	repo := New(client, 0, log.NewNop())

	require.NoError(t, repo.Set(context.Background(), model.UserSummary{ID: "u-1"}))
	assert.Equal(t, DefaultTTL, mr.TTL("inventory:user:u-1"))
}

func TestCacheRepositoryLogsBrokenEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	core, logs := observer.New(zapcore.ErrorLevel)
	repo := New(client, time.Minute, log.NewFromZap(zap.New(core)))

	require.NoError(t, mr.Set("inventory:user:u-1", "{not json"))

	_, err := repo.Get(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
	assert.Equal(t, 1, logs.FilterMessageSnippet("user.repository.redis.Get: decode").Len())
}
