package kafka

import (
	"fmt"

	"inventory-srv/config"
	"inventory-srv/pkg/kafka"
)

// Connect returns nil without error when no brokers are configured.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	return producer, nil
}

// Disconnect closes the Kafka producer
func Disconnect(producer kafka.IProducer) error {
	if producer == nil {
		return nil
	}
	return producer.Close()
}
