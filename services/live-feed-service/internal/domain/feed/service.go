package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/events"
)

// Publisher delivers a message to every gateway watching the auction
type Publisher interface {
	Publish(ctx context.Context, msg *Message) error
}

// Service converts broker events to feed messages and publishes them
type Service struct {
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewService(publisher Publisher, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// HandleEvent decodes an outbox payload and publishes it to the auction's
// feed. Unknown event types are skipped. A returned error wrapping
// ErrMalformedEvent will fail the same way on every retry.
func (s *Service) HandleEvent(ctx context.Context, eventType string, body []byte) error {
	payload, err := events.DecodePayload(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	msg, err := NewMessage(eventType, payload, s.clock.Now())
	if errors.Is(err, ErrUnknownEvent) {
		s.logger.Debug("Skipping event", "event_type", eventType)
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish feed message: %w", err)
	}
	return nil
}
