package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/logging"
	"github.com/floroz/estate-gavel/pkg/redisconn"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/adapters/events"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/adapters/pubsub"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/config"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/domain/feed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("json", "info").Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Connect to Redis
	rdb, err := redisconn.Open(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	logger.Info("Redis Connected")

	// 2. Connect to RabbitMQ
	amqpConn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer amqpConn.Close()
	logger.Info("RabbitMQ Connected")

	// 3. Initialize Consumer
	service := feed.NewService(pubsub.NewRedisPublisher(rdb), clock.System(), logger)
	consumer := events.NewFeedConsumer(amqpConn, service, events.ConsumerConfig{
		Exchange: cfg.EventsExchange,
		Queue:    cfg.FeedQueue,
	}, logger)

	logger.Info("Starting Live Feed Consumer...")
	if runErr := consumer.Run(ctx); runErr != nil {
		logger.Error("Consumer failed", "error", runErr)
		os.Exit(1)
	}

	logger.Info("Worker stopped")
}
