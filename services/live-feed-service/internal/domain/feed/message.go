// Package feed turns auction events into the messages pushed to live
// auction viewers.
package feed

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/events"
)

var (
	// ErrUnknownEvent is returned for routing keys the feed does not forward
	ErrUnknownEvent = errors.New("unknown event type")

	// ErrMalformedEvent is returned when a payload can never be converted
	ErrMalformedEvent = errors.New("malformed event")
)

// Message is one entry of an auction's live feed. It never carries bidder
// contact details.
type Message struct {
	Type       string         `json:"type"`
	AuctionID  uuid.UUID      `json:"auction_id"`
	Data       map[string]any `json:"data"`
	ReceivedAt time.Time      `json:"received_at"`
}

// Fields copied into Message.Data per event type. Anything else in the
// payload, including bidder_id, stays out of the feed.
var publicFields = map[string][]string{
	events.EventTypeBidPlaced:        {"item_id", "bid_id", "seq", "kind", "amount", "bidder_name", "created_at"},
	events.EventTypeItemSold:         {"item_id", "bid_id", "amount", "buyer_name", "sold_at"},
	events.EventTypeAuctionPublished: {"name", "is_demo", "published_at", "end_time"},
	events.EventTypeAuctionClosed:    {"closed_at", "reason"},
}

// ChannelName is the Redis pub/sub channel of an auction's feed
func ChannelName(auctionID uuid.UUID) string {
	return "auction:" + auctionID.String() + ":events"
}

// NewMessage builds the feed message for an event payload
func NewMessage(eventType string, payload map[string]any, now time.Time) (*Message, error) {
	allowed, ok := publicFields[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, eventType)
	}

	rawID, _ := payload["auction_id"].(string)
	auctionID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: auction_id %q", ErrMalformedEvent, rawID)
	}

	data := make(map[string]any, len(allowed))
	for _, key := range allowed {
		if v, ok := payload[key]; ok {
			data[key] = v
		}
	}

	return &Message{
		Type:       eventType,
		AuctionID:  auctionID,
		Data:       data,
		ReceivedAt: now.UTC(),
	}, nil
}
