package user

import (
	"context"

	"inventory-srv/internal/model"
)

// UseCase is the account directory. Only Create and GetByEmail expose the password hash.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.UserSummary, error)
	FindManagerByName(ctx context.Context, name string) (model.UserSummary, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
