package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	pkgevents "github.com/floroz/estate-gavel/pkg/events"
)

// ProducerConfig tunes the outbox relay
type ProducerConfig struct {
	Exchange  string
	BatchSize int
	Interval  time.Duration
}

// AuctionEventsProducer relays auction events from the outbox to RabbitMQ
type AuctionEventsProducer struct {
	relay     *pkgevents.OutboxRelay
	publisher *pkgevents.RabbitMQPublisher
}

// NewAuctionEventsProducer creates a producer publishing to cfg.Exchange
func NewAuctionEventsProducer(
	outboxRepo pkgevents.OutboxRepository,
	txManager pkgdb.TransactionManager,
	conn *amqp.Connection,
	cfg ProducerConfig,
	logger *slog.Logger,
) (*AuctionEventsProducer, error) {
	publisher, err := pkgevents.NewRabbitMQPublisher(conn, cfg.Exchange)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	relay := pkgevents.NewOutboxRelay(
		outboxRepo,
		publisher,
		txManager,
		cfg.BatchSize,
		cfg.Interval,
		cfg.Exchange,
		logger.With("component", "outbox_relay"),
	)

	return &AuctionEventsProducer{
		relay:     relay,
		publisher: publisher,
	}, nil
}

// Run starts the relay loop
func (p *AuctionEventsProducer) Run(ctx context.Context) error {
	return p.relay.Run(ctx)
}

// Close closes the publisher channel
func (p *AuctionEventsProducer) Close() error {
	return p.publisher.Close()
}
