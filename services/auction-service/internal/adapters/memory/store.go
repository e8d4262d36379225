// Package memory is a process-local storage adapter with the same locking
// and transaction contract as the Postgres adapter. Writes made inside a
// transaction become visible at commit; reads see committed state only.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

// ErrLockTimeout is returned when a row lock is not acquired in time
var ErrLockTimeout = errors.New("lock timeout")

const sharedWeight = 1 << 20

// Store holds every record of the auction service
type Store struct {
	mu       sync.RWMutex
	auctions map[uuid.UUID]*auctions.Auction
	items    map[uuid.UUID]*auctions.Item
	comps    map[uuid.UUID][]*auctions.Comp
	bids     map[uuid.UUID][]*bids.Bid
	orders   map[uuid.UUID]*bids.Order
	outbox   []*events.OutboxEvent

	// outboxByID indexes unpublished events; published ones are compacted
	// out of outbox once they make up half of it.
	outboxByID      map[uuid.UUID]*events.OutboxEvent
	outboxPublished int

	itemLocks    sync.Map
	auctionLocks sync.Map
	outboxLock   *semaphore.Weighted
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		auctions:   make(map[uuid.UUID]*auctions.Auction),
		items:      make(map[uuid.UUID]*auctions.Item),
		comps:      make(map[uuid.UUID][]*auctions.Comp),
		bids:       make(map[uuid.UUID][]*bids.Bid),
		orders:     make(map[uuid.UUID]*bids.Order),
		outboxByID: make(map[uuid.UUID]*events.OutboxEvent),
		outboxLock: semaphore.NewWeighted(1),
	}
}

func (s *Store) itemLock(id uuid.UUID) *semaphore.Weighted {
	l, _ := s.itemLocks.LoadOrStore(id, semaphore.NewWeighted(1))
	return l.(*semaphore.Weighted)
}

func (s *Store) auctionLock(id uuid.UUID) *semaphore.Weighted {
	l, _ := s.auctionLocks.LoadOrStore(id, semaphore.NewWeighted(sharedWeight))
	return l.(*semaphore.Weighted)
}

// TransactionManager runs units of work against a Store
type TransactionManager struct {
	store       *Store
	lockTimeout time.Duration
}

// NewTransactionManager creates a transaction manager. Lock waits longer
// than lockTimeout fail with ErrLockTimeout.
func NewTransactionManager(store *Store, lockTimeout time.Duration) *TransactionManager {
	return &TransactionManager{store: store, lockTimeout: lockTimeout}
}

type txKey struct{}

type tx struct {
	store       *Store
	lockTimeout time.Duration
	held        map[*semaphore.Weighted]int64
	order       []*semaphore.Weighted
	ops         []func()
}

// WithinTx runs fn in a transaction. Pending writes are applied atomically
// when fn succeeds and discarded otherwise; locks are released afterwards.
func (m *TransactionManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(ctx)
	}

	t := &tx{
		store:       m.store,
		lockTimeout: m.lockTimeout,
		held:        make(map[*semaphore.Weighted]int64),
	}
	defer t.release()

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.store.mu.Lock()
	for _, op := range t.ops {
		op()
	}
	m.store.mu.Unlock()
	return nil
}

func (t *tx) acquire(ctx context.Context, l *semaphore.Weighted, weight int64) error {
	if have, ok := t.held[l]; ok {
		if have < weight {
			return errors.New("lock upgrade inside a transaction is not supported")
		}
		return nil
	}

	lockCtx := ctx
	if t.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, t.lockTimeout)
		defer cancel()
	}
	if err := l.Acquire(lockCtx, weight); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrLockTimeout
	}
	t.held[l] = weight
	t.order = append(t.order, l)
	return nil
}

func (t *tx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		l := t.order[i]
		l.Release(t.held[l])
	}
}

// write applies op at commit inside a transaction, or right away otherwise
func (s *Store) write(ctx context.Context, op func()) {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		t.ops = append(t.ops, op)
		return
	}
	s.mu.Lock()
	op()
	s.mu.Unlock()
}

func (s *Store) lock(ctx context.Context, l *semaphore.Weighted, weight int64) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return nil
	}
	if err := t.acquire(ctx, l, weight); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	return nil
}

func copyAuction(a *auctions.Auction) *auctions.Auction {
	c := *a
	return &c
}

func copyItem(i *auctions.Item) *auctions.Item {
	c := *i
	return &c
}

func copyBid(b *bids.Bid) *bids.Bid {
	c := *b
	return &c
}

func copyOrder(o *bids.Order) *bids.Order {
	c := *o
	return &c
}
