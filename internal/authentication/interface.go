package authentication

import (
	"context"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (AuthOutput, error)
	CurrentUser(ctx context.Context, sc model.Scope) (model.UserSummary, error)
	ListUsers(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error)
}
