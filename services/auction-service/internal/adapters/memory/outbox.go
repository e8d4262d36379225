package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/events"
)

func (s *Store) SaveEvent(ctx context.Context, event *events.OutboxEvent) error {
	c := *event
	s.write(ctx, func() {
		s.outbox = append(s.outbox, &c)
		s.outboxByID[c.ID] = &c
	})
	return nil
}

// GetPendingEvents locks the outbox for the surrounding transaction, so
// concurrent relays never publish the same event twice.
func (s *Store) GetPendingEvents(ctx context.Context, limit int) ([]*events.OutboxEvent, error) {
	if err := s.lock(ctx, s.outboxLock, 1); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*events.OutboxEvent, 0, limit)
	for _, e := range s.outbox {
		if e.Status != events.OutboxStatusPending {
			continue
		}
		c := *e
		out = append(out, &c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// UpdateEventStatus records the relay outcome. Published events are dropped.
func (s *Store) UpdateEventStatus(ctx context.Context, id uuid.UUID, status events.OutboxStatus) error {
	now := time.Now().UTC()
	s.write(ctx, func() {
		e, ok := s.outboxByID[id]
		if !ok {
			return
		}
		e.Status = status
		e.ProcessedAt = &now
		if status != events.OutboxStatusPublished {
			return
		}
		delete(s.outboxByID, id)
		s.outboxPublished++
		if s.outboxPublished*2 >= len(s.outbox) {
			s.compactOutbox()
		}
	})
	return nil
}

// compactOutbox drops published events; callers hold s.mu
func (s *Store) compactOutbox() {
	kept := make([]*events.OutboxEvent, 0, len(s.outboxByID))
	for _, e := range s.outbox {
		if e.Status != events.OutboxStatusPublished {
			kept = append(kept, e)
		}
	}
	s.outbox = kept
	s.outboxPublished = 0
}

// Events returns a copy of every unpublished outbox event in insertion order
func (s *Store) Events() []*events.OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*events.OutboxEvent, 0, len(s.outboxByID))
	for _, e := range s.outbox {
		if e.Status == events.OutboxStatusPublished {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out
}
