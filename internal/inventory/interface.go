package inventory

import (
	"context"

	"inventory-srv/internal/model"
)

//go:generate mockery --name Producer

// Producer publishes inventory events after the corresponding row is committed.
// Callers log failures and never roll back on them.
type Producer interface {
	PublishReceptionCreated(ctx context.Context, r model.EquipmentReception) error
	PublishDeliveryCreated(ctx context.Context, d model.EquipmentDelivery) error
}

type nopProducer struct{}

// NewNopProducer returns a Producer used when no broker is configured.
func NewNopProducer() Producer {
	return nopProducer{}
}

func (nopProducer) PublishReceptionCreated(context.Context, model.EquipmentReception) error {
	return nil
}

func (nopProducer) PublishDeliveryCreated(context.Context, model.EquipmentDelivery) error {
	return nil
}
