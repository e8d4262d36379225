package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	pkgevents "github.com/floroz/estate-gavel/pkg/events"
)

// PostgresOutboxRepository stores outbox events using pgx
type PostgresOutboxRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOutboxRepository creates a new PostgreSQL outbox repository
func NewPostgresOutboxRepository(pool *pgxpool.Pool) *PostgresOutboxRepository {
	return &PostgresOutboxRepository{pool: pool}
}

// SaveEvent saves an outbox event within the caller's transaction
func (r *PostgresOutboxRepository) SaveEvent(ctx context.Context, event *pkgevents.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (id, event_type, aggregate_id, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5::outbox_status, $6)
	`
	_, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		event.ID,
		event.EventType,
		event.AggregateID,
		event.Payload,
		string(event.Status),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// GetPendingEvents retrieves pending events for processing
// Uses SELECT FOR UPDATE SKIP LOCKED to prevent multiple workers from processing the same event
func (r *PostgresOutboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*pkgevents.OutboxEvent, error) {
	query := `
		SELECT id, event_type, aggregate_id, payload, status::text, created_at, processed_at
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}
	defer rows.Close()

	var events []*pkgevents.OutboxEvent
	for rows.Next() {
		var (
			event  pkgevents.OutboxEvent
			status string
		)
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.AggregateID,
			&event.Payload,
			&status,
			&event.CreatedAt,
			&event.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Status = pkgevents.OutboxStatus(status)
		events = append(events, &event)
	}
	return events, rows.Err()
}

// UpdateEventStatus updates the status of an event
func (r *PostgresOutboxRepository) UpdateEventStatus(ctx context.Context, eventID uuid.UUID, status pkgevents.OutboxStatus) error {
	query := `
		UPDATE outbox_events
		SET status = $1::outbox_status, processed_at = $2
		WHERE id = $3
	`

	var processedAt *time.Time
	if status == pkgevents.OutboxStatusPublished || status == pkgevents.OutboxStatusFailed {
		now := time.Now()
		processedAt = &now
	}

	result, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query, string(status), processedAt, eventID)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found")
	}

	return nil
}
