package consumer

import (
	"context"

	"github.com/IBM/sarama"

	"board-srv/config"
	"board-srv/pkg/discord"
	"board-srv/pkg/log"
	"board-srv/pkg/redis"
)

// Server is the activity event consumer orchestrator. It owns the Kafka
// consumer group session and keeps the daily dashboard counters current.
type Server struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig

	// Infrastructure clients
	consumerGroup sarama.ConsumerGroup
	redisClient   redis.IRedis

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	KafkaConfig config.KafkaConfig

	// Infrastructure clients
	ConsumerGroup sarama.ConsumerGroup
	RedisClient   redis.IRedis

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts consuming the activity topic and blocks until the context is
// cancelled. Consume returns on every rebalance, so it runs in a loop.
func (srv *Server) Run(ctx context.Context) error {
	handler := newActivityHandler(srv.l, srv.redisClient)

	go srv.watchErrors(ctx)

	srv.l.Infof(ctx, "Consumer Server is running, topic=%s group=%s",
		srv.kafkaConfig.Topic, srv.kafkaConfig.GroupID)

	for {
		if err := srv.consumerGroup.Consume(ctx, []string{srv.kafkaConfig.Topic}, handler); err != nil {
			srv.l.Errorf(ctx, "consumer.Run: consume session failed: %v", err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

// watchErrors drains the consumer group error channel so it does not block.
func (srv *Server) watchErrors(ctx context.Context) {
	for {
		select {
		case err, ok := <-srv.consumerGroup.Errors():
			if !ok {
				return
			}
			srv.l.Errorf(ctx, "consumer.watchErrors: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
