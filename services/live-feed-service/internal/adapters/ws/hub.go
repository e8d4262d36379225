// Package ws is the websocket gateway of the live feed. Viewers join one
// room per auction and receive every feed message published for it.
package ws

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// RoomSubscriber is told when a viewer joins or leaves an auction room
type RoomSubscriber interface {
	Subscribe(ctx context.Context, auctionID uuid.UUID) error
	Unsubscribe(auctionID uuid.UUID)
}

// Hub tracks the viewers of every auction on this instance
type Hub struct {
	subscriber RoomSubscriber
	logger     *slog.Logger

	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*Client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		rooms:  make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// SetSubscriber attaches the upstream feed. The subscriber usually needs the
// hub as its broadcast sink, so it is set after construction.
func (h *Hub) SetSubscriber(s RoomSubscriber) {
	h.subscriber = s
}

// Join subscribes to the auction feed and adds the client to its room
func (h *Hub) Join(ctx context.Context, c *Client) error {
	if h.subscriber != nil {
		if err := h.subscriber.Subscribe(ctx, c.auctionID); err != nil {
			return err
		}
	}

	h.mu.Lock()
	room, ok := h.rooms[c.auctionID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.auctionID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("Viewer joined", "auction_id", c.auctionID, "client_id", c.id)
	return nil
}

// Leave removes the client from its room and closes its outbound queue. It
// is safe to call more than once.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.auctionID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, member := room[c]; !member {
		h.mu.Unlock()
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.auctionID)
	}
	close(c.send)
	h.mu.Unlock()

	// Outside the lock: Leave also runs from Broadcast on the fan-out goroutine.
	if h.subscriber != nil {
		h.subscriber.Unsubscribe(c.auctionID)
	}
	h.logger.Debug("Viewer left", "auction_id", c.auctionID, "client_id", c.id)
}

// Broadcast queues payload for every viewer of the auction. Viewers whose
// queue is full are disconnected.
func (h *Hub) Broadcast(auctionID uuid.UUID, payload []byte) {
	var slow []*Client

	h.mu.RLock()
	for c := range h.rooms[auctionID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow viewer", "auction_id", auctionID, "client_id", c.id)
		h.Leave(c)
	}
}

// Viewers returns how many clients watch the auction on this instance
func (h *Hub) Viewers(auctionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[auctionID])
}
