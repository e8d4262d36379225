package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/floroz/estate-gavel/services/live-feed-service/internal/domain/feed"
)

// Broadcaster receives every payload published on a subscribed auction channel
type Broadcaster interface {
	Broadcast(auctionID uuid.UUID, payload []byte)
}

// SubscriptionManager holds exactly one Redis subscription per auction no
// matter how many local viewers watch it.
type SubscriptionManager struct {
	client *redis.Client
	sink   Broadcaster
	logger *slog.Logger

	mu   sync.Mutex
	subs map[uuid.UUID]*subscription
}

// subscription is registered before the Redis round-trip; ready is closed
// once the round-trip finished and err is set.
type subscription struct {
	refs   int
	ready  chan struct{}
	err    error
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSubscriptionManager(client *redis.Client, sink Broadcaster, logger *slog.Logger) *SubscriptionManager {
	return &SubscriptionManager{
		client: client,
		sink:   sink,
		logger: logger,
		subs:   make(map[uuid.UUID]*subscription),
	}
}

// Subscribe adds a viewer of the auction. The first viewer opens the Redis
// subscription; it is confirmed before Subscribe returns. The Redis call is
// made without holding the manager lock.
func (m *SubscriptionManager) Subscribe(ctx context.Context, auctionID uuid.UUID) error {
	m.mu.Lock()
	if s, ok := m.subs[auctionID]; ok {
		s.refs++
		m.mu.Unlock()
		return m.await(ctx, auctionID, s)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	s := &subscription{
		refs:   1,
		ready:  make(chan struct{}),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.subs[auctionID] = s
	m.mu.Unlock()

	ps := m.client.Subscribe(subCtx, feed.ChannelName(auctionID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		m.mu.Lock()
		if m.subs[auctionID] == s {
			delete(m.subs, auctionID)
		}
		s.err = err
		m.mu.Unlock()
		cancel()
		close(s.done)
		close(s.ready)
		return err
	}

	go m.forward(subCtx, auctionID, ps, s.done)
	close(s.ready)

	m.logger.Debug("Subscribed to auction feed", "auction_id", auctionID)
	return nil
}

// await blocks until a subscription opened by another viewer is confirmed
func (m *SubscriptionManager) await(ctx context.Context, auctionID uuid.UUID, s *subscription) error {
	select {
	case <-s.ready:
		return s.err
	default:
	}

	select {
	case <-s.ready:
		return s.err
	case <-ctx.Done():
		m.release(auctionID, s)
		return ctx.Err()
	}
}

// Unsubscribe removes a viewer and tears the Redis subscription down when the
// last one leaves. It never waits for the fan-out goroutine, so it may be
// called from inside Broadcast.
func (m *SubscriptionManager) Unsubscribe(auctionID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.subs[auctionID]
	m.mu.Unlock()
	if ok {
		m.release(auctionID, s)
	}
}

func (m *SubscriptionManager) release(auctionID uuid.UUID, s *subscription) {
	m.mu.Lock()
	if m.subs[auctionID] != s {
		m.mu.Unlock()
		return
	}
	s.refs--
	if s.refs > 0 {
		m.mu.Unlock()
		return
	}
	delete(m.subs, auctionID)
	m.mu.Unlock()

	s.cancel()
	m.logger.Debug("Unsubscribed from auction feed", "auction_id", auctionID)
}

// Active reports how many auctions hold a Redis subscription
func (m *SubscriptionManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Close drops every subscription and waits for the fan-out goroutines. It
// must not be called from Broadcast.
func (m *SubscriptionManager) Close() {
	m.mu.Lock()
	subs := m.subs
	m.subs = make(map[uuid.UUID]*subscription)
	m.mu.Unlock()

	for _, s := range subs {
		s.cancel()
		<-s.done
	}
}

func (m *SubscriptionManager) forward(ctx context.Context, auctionID uuid.UUID, ps *redis.PubSub, done chan struct{}) {
	defer close(done)
	defer ps.Close()

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				m.logger.Warn("Redis subscription closed", "auction_id", auctionID)
				return
			}
			if ctx.Err() != nil {
				return
			}
			m.sink.Broadcast(auctionID, []byte(msg.Payload))
		}
	}
}
