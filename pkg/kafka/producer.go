package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// Config holds the producer settings for the activity topic.
type Config struct {
	Brokers []string
	Topic   string
}

// IProducer publishes activity events to the configured topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

type producer struct {
	sp    sarama.SyncProducer
	topic string
}

// NewProducer creates a sync producer for the activity topic. Messages are
// hash-partitioned by key, so events sharing a type land on one partition
// and keep their order for the counters downstream.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}

	config := newClientConfig(ProducerClientID)
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = publishRetryMax
	config.Producer.Timeout = publishTimeout

	sp, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &producer{sp: sp, topic: cfg.Topic}, nil
}

// Publish sends one event, blocking until the partition leader acks it.
func (p *producer) Publish(key, value []byte) error {
	_, _, err := p.sp.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying producer.
func (p *producer) Close() error {
	if p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

// HealthCheck verifies the producer is initialized.
func (p *producer) HealthCheck() error {
	if p.sp == nil {
		return fmt.Errorf("kafka: producer is not initialized")
	}
	return nil
}
