package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	kafkaDelivery "inventory-srv/internal/inventory/delivery/kafka"
	"inventory-srv/internal/model"
)

func (p *implProducer) PublishReceptionCreated(ctx context.Context, r model.EquipmentReception) error {
	return p.publish(ctx, kafkaDelivery.InventoryEventMessage{
		Event:         kafkaDelivery.EventReceptionCreated,
		ID:            r.ID,
		EquipmentName: r.EquipmentName,
		Category:      r.Category,
		Quantity:      r.Quantity,
		ActorID:       r.CreatedBy,
		OccurredAt:    p.now().UTC(),
	})
}

func (p *implProducer) PublishDeliveryCreated(ctx context.Context, d model.EquipmentDelivery) error {
	return p.publish(ctx, kafkaDelivery.InventoryEventMessage{
		Event:         kafkaDelivery.EventDeliveryCreated,
		ID:            d.ID,
		EquipmentName: d.EquipmentName,
		Category:      d.Category,
		Quantity:      d.Quantity,
		ActorID:       d.DeliveredBy,
		OccurredAt:    p.now().UTC(),
	})
}

func (p *implProducer) publish(ctx context.Context, msg kafkaDelivery.InventoryEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", msg.Event, err)
	}

	key := []byte(strconv.FormatInt(msg.ID, 10))
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", msg.Event, err)
	}

	p.l.Debugf(ctx, "inventory.delivery.kafka.producer.publish: published %s id=%d", msg.Event, msg.ID)
	return nil
}
