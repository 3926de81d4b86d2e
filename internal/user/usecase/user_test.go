package usecase

import (
	"context"
	"errors"
	"testing"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/internal/user/repository"
	"inventory-srv/internal/user/repository/mocks"
	"inventory-srv/pkg/log"
	"inventory-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = model.User{
	ID:           "u-1",
	Email:        "alice@example.com",
	PasswordHash: "hash",
	Name:         "Alice",
	Role:         model.RoleUser,
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		repo.On("Create", ctx, repository.CreateOptions{
			Email: alice.Email, PasswordHash: "hash", Name: "Alice", Role: model.RoleUser,
		}).Return(alice, nil)

		uc := New(log.NewNop(), repo, nil)
		u, err := uc.Create(ctx, user.CreateInput{Email: alice.Email, PasswordHash: "hash", Name: "Alice", Role: model.RoleUser})
		require.NoError(t, err)
		assert.Equal(t, alice, u)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		repo.On("Create", ctx, mock.Anything).Return(model.User{}, repository.ErrDuplicateEmail)

		uc := New(log.NewNop(), repo, nil)
		_, err := uc.Create(ctx, user.CreateInput{Email: alice.Email, Role: model.RoleUser})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := New(log.NewNop(), mocks.NewPostgresRepository(t), nil)
		_, err := uc.Create(ctx, user.CreateInput{Email: alice.Email, Role: "ROOT"})
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips postgres", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		cache := mocks.NewCacheRepository(t)
		cache.On("Get", ctx, "u-1").Return(alice.Summary(), nil)

		uc := New(log.NewNop(), repo, cache)
		s, err := uc.GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, alice.Summary(), s)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss populates", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		cache := mocks.NewCacheRepository(t)
		cache.On("Get", ctx, "u-1").Return(model.UserSummary{}, repository.ErrCacheMiss)
		repo.On("GetByID", ctx, "u-1").Return(alice, nil)
		cache.On("Set", ctx, alice.Summary()).Return(nil)

		uc := New(log.NewNop(), repo, cache)
		s, err := uc.GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, alice.Summary(), s)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		cache := mocks.NewCacheRepository(t)
		cache.On("Get", ctx, "u-1").Return(model.UserSummary{}, errors.New("connection refused"))
		repo.On("GetByID", ctx, "u-1").Return(alice, nil)
		cache.On("Set", ctx, alice.Summary()).Return(errors.New("connection refused"))

		uc := New(log.NewNop(), repo, cache)
		s, err := uc.GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", s.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewPostgresRepository(t)
		repo.On("GetByID", ctx, "missing").Return(model.User{}, repository.ErrNotFound)

		uc := New(log.NewNop(), repo, nil)
		_, err := uc.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestFindManagerByName(t *testing.T) {
	ctx := context.Background()
	bob := model.User{ID: "u-2", Name: "Bob", Role: model.RoleManager}

	repo := mocks.NewPostgresRepository(t)
	repo.On("GetByNameAndRole", ctx, "Bob", model.RoleManager).Return(bob, nil)
	repo.On("GetByNameAndRole", ctx, "Alice", model.RoleManager).Return(model.User{}, repository.ErrNotFound)

	uc := New(log.NewNop(), repo, nil)

	s, err := uc.FindManagerByName(ctx, " Bob ")
	require.NoError(t, err)
	assert.Equal(t, "u-2", s.ID)

	_, err = uc.FindManagerByName(ctx, "Alice")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = uc.FindManagerByName(ctx, "")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewPostgresRepository(t)
	repo.On("List", ctx, repository.ListOptions{Limit: paginator.DefaultLimit, Offset: 0}).Return([]model.User{alice}, nil)
	repo.On("Count", ctx).Return(int64(1), nil)

	uc := New(log.NewNop(), repo, nil)
	out, err := uc.List(ctx, user.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	assert.Equal(t, alice.Summary(), out.Users[0])
	assert.Equal(t, int64(1), out.Paginator.Total)
	assert.Equal(t, 1, out.Paginator.Page)
}
