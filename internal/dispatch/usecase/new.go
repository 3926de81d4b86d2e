package usecase

import (
	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/internal/inventory"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.PostgresRepository
	userUC   user.UseCase
	producer inventory.Producer
}

// New - Factory function
func New(l log.Logger, repo repository.PostgresRepository, userUC user.UseCase, producer inventory.Producer) dispatch.UseCase {
	if producer == nil {
		producer = inventory.NewNopProducer()
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		userUC:   userUC,
		producer: producer,
	}
}
