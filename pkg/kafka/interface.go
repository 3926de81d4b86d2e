package kafka

import "github.com/IBM/sarama"

// IProducer publishes keyed messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a synchronous Kafka producer for cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, err
	}

	return NewProducerFromSync(producer, cfg.Topic), nil
}

// NewProducerFromSync wraps an existing sarama.SyncProducer.
func NewProducerFromSync(producer sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: producer, topic: topic}
}
