package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*Server, error) {
	srv := &Server{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		consumerGroup: cfg.ConsumerGroup,
		redisClient:   cfg.RedisClient,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *Server) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.kafkaConfig.Topic == "" {
		return fmt.Errorf("kafka topic is required")
	}
	if srv.consumerGroup == nil {
		return fmt.Errorf("kafka consumer group is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}

	return nil
}
