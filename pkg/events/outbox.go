package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/database"
)

// OutboxStatus defines the status of an event in the outbox
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusProcessing OutboxStatus = "processing"
	OutboxStatusPublished  OutboxStatus = "published"
	OutboxStatusFailed     OutboxStatus = "failed"
)

// OutboxEvent is an event stored in the same transaction as the state change
// that produced it.
type OutboxEvent struct {
	ID          uuid.UUID    `db:"id"`
	EventType   string       `db:"event_type"`
	AggregateID uuid.UUID    `db:"aggregate_id"`
	Payload     []byte       `db:"payload"`
	Status      OutboxStatus `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	ProcessedAt *time.Time   `db:"processed_at"`
}

// NewOutboxEvent builds a pending event whose payload is fields encoded as a
// protobuf Struct. aggregateID is the auction the event belongs to.
func NewOutboxEvent(eventType string, aggregateID uuid.UUID, fields map[string]any, now time.Time) (*OutboxEvent, error) {
	payload, err := EncodePayload(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	return &OutboxEvent{
		ID:          uuid.New(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      OutboxStatusPending,
		CreatedAt:   now,
	}, nil
}

// OutboxRepository is the relay's view of the outbox table. Both methods run
// inside the transaction carried by ctx.
type OutboxRepository interface {
	GetPendingEvents(ctx context.Context, limit int) ([]*OutboxEvent, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status OutboxStatus) error
}

// EventPublisher defines the interface for publishing events to a broker
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body []byte) error
}

// OutboxRelay polls the outbox for pending events and publishes them
type OutboxRelay struct {
	outboxRepo OutboxRepository
	publisher  EventPublisher
	txManager  database.TransactionManager
	batchSize  int
	interval   time.Duration
	exchange   string
	logger     *slog.Logger
}

// NewOutboxRelay creates a new outbox relay
func NewOutboxRelay(
	outboxRepo OutboxRepository,
	publisher EventPublisher,
	txManager database.TransactionManager,
	batchSize int,
	interval time.Duration,
	exchange string,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		outboxRepo: outboxRepo,
		publisher:  publisher,
		txManager:  txManager,
		batchSize:  batchSize,
		interval:   interval,
		exchange:   exchange,
		logger:     logger,
	}
}

// Run starts the polling loop. It returns nil when ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	if _, err := r.ProcessBatch(ctx); err != nil {
		r.logger.Error("Error processing outbox batch", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil {
				r.logger.Error("Error processing outbox batch", "error", err)
			}
		}
	}
}

// ProcessBatch publishes up to batchSize pending events and marks them
// published. A publish failure rolls the batch back so the events are retried.
func (r *OutboxRelay) ProcessBatch(ctx context.Context) (int, error) {
	published := 0
	err := r.txManager.WithinTx(ctx, func(ctx context.Context) error {
		events, err := r.outboxRepo.GetPendingEvents(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("failed to fetch pending events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		r.logger.Debug("Processing outbox events", "count", len(events))

		for _, event := range events {
			if err := r.publisher.Publish(ctx, r.exchange, event.EventType, event.Payload); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
			}
			if err := r.outboxRepo.UpdateEventStatus(ctx, event.ID, OutboxStatusPublished); err != nil {
				return fmt.Errorf("failed to update event status %s: %w", event.ID, err)
			}
		}
		published = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}
