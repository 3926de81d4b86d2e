package repository

import (
	"context"

	"inventory-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.EquipmentReception, error)
	GetByID(ctx context.Context, id int64) (model.EquipmentReception, error)
	List(ctx context.Context, opt ListOptions) ([]model.EquipmentReception, error)
	Count(ctx context.Context, opt ListOptions) (int64, error)
	Update(ctx context.Context, opt UpdateOptions) (model.EquipmentReception, error)
	Delete(ctx context.Context, id int64) error
}
