package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// ConsumerConfig holds the consumer group settings for the activity topic.
type ConsumerConfig struct {
	Brokers []string
	GroupID string

	// FromOldest makes a group with no committed offsets start at the
	// beginning of the retention window instead of the tip, backfilling the
	// daily counters on a first deploy. Committed offsets always win.
	FromOldest bool
}

// NewConsumerGroup creates the consumer group the stats consumer runs on.
func NewConsumerGroup(cfg ConsumerConfig) (sarama.ConsumerGroup, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka: group ID is required")
	}

	config := newClientConfig(ConsumerClientID)
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	if cfg.FromOldest {
		config.Consumer.Offsets.Initial = sarama.OffsetOldest
	}
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("kafka: create consumer group %s: %w", cfg.GroupID, err)
	}
	return group, nil
}
