package usecase

import (
	"inventory-srv/internal/inventory"
	"inventory-srv/internal/reception"
	"inventory-srv/internal/reception/repository"
	"inventory-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.PostgresRepository
	producer inventory.Producer
}

// New - Factory function
func New(l log.Logger, repo repository.PostgresRepository, producer inventory.Producer) reception.UseCase {
	if producer == nil {
		producer = inventory.NewNopProducer()
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		producer: producer,
	}
}
