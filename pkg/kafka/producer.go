package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

func validateConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return ErrBrokersRequired
	}
	if cfg.Topic == "" {
		return ErrTopicRequired
	}
	return nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion
	if cfg.ClientID != "" {
		config.ClientID = cfg.ClientID
	}
	return config
}

func (p *producerImpl) Publish(key, value []byte) error {
	if p.producer == nil {
		return ErrProducerNotAttached
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return ErrProducerNotAttached
	}
	return nil
}
