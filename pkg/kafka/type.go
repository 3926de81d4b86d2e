package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

var (
	ErrBrokersRequired     = errors.New("at least one kafka broker is required")
	ErrTopicRequired       = errors.New("kafka topic is required")
	ErrProducerNotAttached = errors.New("kafka producer is not initialized")
)

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
