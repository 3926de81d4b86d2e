package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	kafkaDelivery "inventory-srv/internal/inventory/delivery/kafka"
	"inventory-srv/internal/model"
	pkgKafka "inventory-srv/pkg/kafka"
	"inventory-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReceptionCreated(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	var got kafkaDelivery.InventoryEventMessage
	var gotKey string

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		gotKey = string(key)

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		if err := json.Unmarshal(value, &got); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		return nil
	})

	p := New(log.NewNop(), pkgKafka.NewProducerFromSync(sp, "inventory.events")).(*implProducer)
	p.now = func() time.Time { return fixed }

	err := p.PublishReceptionCreated(context.Background(), model.EquipmentReception{
		ID:            42,
		EquipmentName: "Laptop",
		Category:      "IT",
		Quantity:      3,
		CreatedBy:     "u-1",
	})
	require.NoError(t, err)
	require.NoError(t, sp.Close())

	assert.Equal(t, "42", gotKey)
	assert.Equal(t, kafkaDelivery.InventoryEventMessage{
		Event:         kafkaDelivery.EventReceptionCreated,
		ID:            42,
		EquipmentName: "Laptop",
		Category:      "IT",
		Quantity:      3,
		ActorID:       "u-1",
		OccurredAt:    fixed,
	}, got)
}

func TestPublishDeliveryCreatedFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := New(log.NewNop(), pkgKafka.NewProducerFromSync(sp, "inventory.events"))
	err := p.PublishDeliveryCreated(context.Background(), model.EquipmentDelivery{ID: 7, DeliveredBy: "u-1"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}
