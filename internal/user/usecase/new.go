package usecase

import (
	"inventory-srv/internal/user"
	"inventory-srv/internal/user/repository"
	"inventory-srv/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	repo  repository.PostgresRepository
	cache repository.CacheRepository
}

// New - Factory function. cache may be nil, in which case every lookup hits Postgres.
func New(l log.Logger, repo repository.PostgresRepository, cache repository.CacheRepository) user.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
