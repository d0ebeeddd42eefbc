package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"board-srv/config"
	configKafka "board-srv/config/kafka"
	configPostgre "board-srv/config/postgre"
	configRabbit "board-srv/config/rabbitmq"
	configRedis "board-srv/config/redis"
	chatws "board-srv/internal/chat/delivery/ws"
	"board-srv/internal/httpserver"
	"board-srv/pkg/discord"
	"board-srv/pkg/encrypter"
	pkgJWT "board-srv/pkg/jwt"
	"board-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Board API Service...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// Kafka producer (activity events)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// RabbitMQ (realtime fanout)
	rabbitConn, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// Password encrypter
	enc := encrypter.New()

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Websocket hub, fed by the RabbitMQ fanout exchange
	hub, err := chatws.NewHub(rabbitConn, cfg.RabbitMQ.Exchange, redisClient, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to create websocket hub: %v", err)
		return
	}

	hubCtx, cancelHub := context.WithCancel(ctx)
	defer cancelHub()
	go func() {
		if err := hub.Run(hubCtx); err != nil && hubCtx.Err() == nil {
			logger.Errorf(hubCtx, "Websocket hub stopped: %v", err)
		}
	}()

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: postgresDB,

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		Hub:           hub,

		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    enc,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
		os.Exit(1)
	}
}
