package bids

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the append-only, per-item ordered log of bids. Appends must run
// while the item is locked.
type Ledger struct {
	repo BidRepository
}

// NewLedger creates a ledger over repo
func NewLedger(repo BidRepository) *Ledger {
	return &Ledger{repo: repo}
}

// Append writes bid directly after tip, the last entry read in the same
// critical section, and returns the assigned position.
func (l *Ledger) Append(ctx context.Context, tip, bid *Bid) (int64, error) {
	bid.Seq = 1
	if tip != nil {
		bid.Seq = tip.Seq + 1
	}
	if err := l.repo.InsertBid(ctx, bid); err != nil {
		return 0, fmt.Errorf("failed to append bid: %w", err)
	}
	return bid.Seq, nil
}

// Highest returns the last appended bid, or nil when the item has none. For
// competitive items ledger order is price order.
func (l *Ledger) Highest(ctx context.Context, itemID uuid.UUID) (*Bid, error) {
	bid, err := l.repo.GetLastBid(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last bid: %w", err)
	}
	return bid, nil
}

// All returns the item's history, most recent first
func (l *Ledger) All(ctx context.Context, itemID uuid.UUID) ([]*Bid, error) {
	bids, err := l.repo.ListBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

// TopN returns the n guesses closest to target. n <= 0 returns all of them.
func (l *Ledger) TopN(ctx context.Context, itemID uuid.UUID, n int, target decimal.Decimal) ([]*Bid, error) {
	bids, err := l.All(ctx, itemID)
	if err != nil {
		return nil, err
	}
	ranked := RankByDistance(bids, target)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// DistanceTo is the absolute difference between the bid and target
func (b *Bid) DistanceTo(target decimal.Decimal) decimal.Decimal {
	return b.Amount.Sub(target).Abs()
}

// RankByDistance returns a copy of bids ordered by distance to target, ties
// going to the earliest submission.
func RankByDistance(bids []*Bid, target decimal.Decimal) []*Bid {
	ranked := make([]*Bid, len(bids))
	copy(ranked, bids)
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].DistanceTo(target), ranked[j].DistanceTo(target)
		if c := di.Cmp(dj); c != 0 {
			return c < 0
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].Seq < ranked[j].Seq
	})
	return ranked
}
