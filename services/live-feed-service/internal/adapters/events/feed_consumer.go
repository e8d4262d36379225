package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	pkgevents "github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/domain/feed"
)

// Routing keys the live feed listens to on the auction events exchange
var FeedBindings = []string{"bid.#", "item.#", "auction.#"}

// EventHandler processes one auction event
type EventHandler interface {
	HandleEvent(ctx context.Context, eventType string, body []byte) error
}

// ConsumerConfig names the exchange and the durable queue to consume
type ConsumerConfig struct {
	Exchange string
	Queue    string
}

// FeedConsumer consumes auction events and hands them to the feed
type FeedConsumer struct {
	conn    *amqp.Connection
	handler EventHandler
	cfg     ConsumerConfig
	logger  *slog.Logger
}

// NewFeedConsumer creates a new feed consumer
func NewFeedConsumer(conn *amqp.Connection, handler EventHandler, cfg ConsumerConfig, logger *slog.Logger) *FeedConsumer {
	return &FeedConsumer{
		conn:    conn,
		handler: handler,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run starts the consumer loop. It returns nil when ctx is cancelled.
func (c *FeedConsumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if setupErr := c.setupRabbitMQ(ch); setupErr != nil {
		return fmt.Errorf("failed to setup rabbitmq: %w", setupErr)
	}

	msgs, err := ch.Consume(
		c.cfg.Queue, // queue
		"",          // consumer tag
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.logger.Info("Waiting for messages...", "queue", c.cfg.Queue)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *FeedConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	err := c.handler.HandleEvent(ctx, d.RoutingKey, d.Body)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.Error("Failed to Ack message", "error", ackErr)
		}
	case errors.Is(err, feed.ErrMalformedEvent):
		// Retrying cannot fix the payload.
		c.logger.Error("Discarding malformed event", "routing_key", d.RoutingKey, "error", err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.logger.Error("Failed to Nack message", "error", nackErr)
		}
	default:
		c.logger.Error("Failed to process event", "routing_key", d.RoutingKey, "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.logger.Error("Failed to Nack message (requeue)", "error", nackErr)
		}
	}
}

func (c *FeedConsumer) setupRabbitMQ(ch *amqp.Channel) error {
	if err := pkgevents.DeclareExchange(ch, c.cfg.Exchange); err != nil {
		return err
	}

	q, err := ch.QueueDeclare(
		c.cfg.Queue, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return err
	}

	for _, key := range FeedBindings {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}
