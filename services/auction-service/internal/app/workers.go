package app

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/events"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/scheduler"
	"github.com/floroz/estate-gavel/services/auction-service/internal/config"
)

// RunWorkers runs the expiry sweeper and, when RabbitMQ is configured, the
// outbox relay. It blocks until ctx is cancelled or a worker fails.
func RunWorkers(ctx context.Context, cfg *config.Config, storage *Storage, closer scheduler.ExpiredCloser, logger *slog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	sweeper := scheduler.NewExpirySweeper(closer, cfg.ExpirySweepInterval, cfg.ExpirySweepBatch, logger.With("component", "expiry_sweeper"))
	g.Go(func() error {
		logger.Info("Starting Expiry Sweeper...", "interval", cfg.ExpirySweepInterval)
		return sweeper.Run(ctx)
	})

	if cfg.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL is not set, outbox events stay pending")
		return g.Wait()
	}

	amqpConn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer amqpConn.Close()
	logger.Info("RabbitMQ Connected")

	producer, err := events.NewAuctionEventsProducer(storage.Outbox, storage.TxManager, amqpConn, events.ProducerConfig{
		Exchange:  cfg.EventsExchange,
		BatchSize: cfg.OutboxBatchSize,
		Interval:  cfg.OutboxInterval,
	}, logger)
	if err != nil {
		return err
	}
	defer producer.Close()

	g.Go(func() error {
		logger.Info("Starting Auction Events Producer...")
		return producer.Run(ctx)
	})

	return g.Wait()
}
