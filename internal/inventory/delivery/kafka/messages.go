package kafka

import "time"

// InventoryEventMessage - Kafka message for reception.created and delivery.created
type InventoryEventMessage struct {
	Event         string    `json:"event"`
	ID            int64     `json:"id"`
	EquipmentName string    `json:"equipment_name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
