package reception

import (
	"context"

	"inventory-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.EquipmentReception, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.EquipmentReception, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.EquipmentReception, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
