package repository

import (
	"context"

	"inventory-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.EquipmentDelivery, error)
	GetByID(ctx context.Context, id int64) (model.EquipmentDelivery, error)
	List(ctx context.Context, opt ListOptions) ([]model.EquipmentDelivery, error)
	Count(ctx context.Context, opt ListOptions) (int64, error)
	Update(ctx context.Context, opt UpdateOptions) (model.EquipmentDelivery, error)
	Delete(ctx context.Context, id int64) error
}
