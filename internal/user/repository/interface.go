package repository

import (
	"context"

	"inventory-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByNameAndRole(ctx context.Context, name, role string) (model.User, error)
	List(ctx context.Context, opt ListOptions) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}

// CacheRepository stores account projections. It never holds password hashes.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	Get(ctx context.Context, id string) (model.UserSummary, error)
	Set(ctx context.Context, u model.UserSummary) error
}
