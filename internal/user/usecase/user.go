package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/internal/user/repository"
	"inventory-srv/pkg/paginator"
)

func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	if !model.IsValidRole(input.Role) {
		return model.User{}, user.ErrInvalidRole
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Name:         input.Name,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "user.usecase.Create: repo.Create failed: %v", err)
		return model.User{}, err
	}

	return u, nil
}

func (uc *implUseCase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, uc.mapRepoError(ctx, "GetByEmail", err)
	}
	return u, nil
}

// GetByID serves from the cache when possible. Cache failures are logged and ignored.
func (uc *implUseCase) GetByID(ctx context.Context, id string) (model.UserSummary, error) {
	if strings.TrimSpace(id) == "" {
		return model.UserSummary{}, user.ErrUserNotFound
	}

	if uc.cache != nil {
		s, err := uc.cache.Get(ctx, id)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "user.usecase.GetByID: cache.Get failed: %v", err)
		}
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return model.UserSummary{}, uc.mapRepoError(ctx, "GetByID", err)
	}

	s := u.Summary()
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, s); err != nil {
			uc.l.Warnf(ctx, "user.usecase.GetByID: cache.Set failed: %v", err)
		}
	}
	return s, nil
}

func (uc *implUseCase) FindManagerByName(ctx context.Context, name string) (model.UserSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.UserSummary{}, user.ErrUserNotFound
	}

	u, err := uc.repo.GetByNameAndRole(ctx, name, model.RoleManager)
	if err != nil {
		return model.UserSummary{}, uc.mapRepoError(ctx, "FindManagerByName", err)
	}
	return u.Summary(), nil
}

func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	q := input.Paginator
	q.Normalize()

	users, err := uc.repo.List(ctx, repository.ListOptions{
		Limit:  q.Limit,
		Offset: q.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: repo.List failed: %v", err)
		return user.ListOutput{}, err
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: repo.Count failed: %v", err)
		return user.ListOutput{}, err
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}

	return user.ListOutput{
		Users:     summaries,
		Paginator: paginator.NewPage(q, total, len(summaries)),
	}, nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return user.ErrUserNotFound
	}
	uc.l.Errorf(ctx, "user.usecase.%s: repository failed: %v", op, err)
	return err
}
