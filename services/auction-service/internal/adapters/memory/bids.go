package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

// ErrDuplicateSeq mirrors the (item_id, seq) unique constraint
var ErrDuplicateSeq = fmt.Errorf("duplicate ledger position")

func (s *Store) InsertBid(ctx context.Context, bid *bids.Bid) error {
	s.mu.RLock()
	ledger := s.bids[bid.ItemID]
	taken := len(ledger) > 0 && ledger[len(ledger)-1].Seq >= bid.Seq
	s.mu.RUnlock()
	if taken {
		return fmt.Errorf("%w: item %s seq %d", ErrDuplicateSeq, bid.ItemID, bid.Seq)
	}
	c := copyBid(bid)
	s.write(ctx, func() { s.bids[c.ItemID] = append(s.bids[c.ItemID], c) })
	return nil
}

func (s *Store) GetLastBid(_ context.Context, itemID uuid.UUID) (*bids.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ledger := s.bids[itemID]
	if len(ledger) == 0 {
		return nil, nil
	}
	return copyBid(ledger[len(ledger)-1]), nil
}

func (s *Store) GetBidByRequestID(_ context.Context, itemID uuid.UUID, requestID string) (*bids.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bids[itemID] {
		if b.RequestID != nil && *b.RequestID == requestID {
			return copyBid(b), nil
		}
	}
	return nil, nil
}

func (s *Store) ListBidsByItem(_ context.Context, itemID uuid.UUID) ([]*bids.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reversed(s.bids[itemID]), nil
}

func (s *Store) ListBidsByAuction(_ context.Context, auctionID uuid.UUID) ([]*bids.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*bids.Bid, 0)
	for _, ledger := range s.bids {
		if len(ledger) > 0 && ledger[0].AuctionID == auctionID {
			out = append(out, reversed(ledger)...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID.String() < out[j].ItemID.String()
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

func reversed(ledger []*bids.Bid) []*bids.Bid {
	out := make([]*bids.Bid, 0, len(ledger))
	for i := len(ledger) - 1; i >= 0; i-- {
		out = append(out, copyBid(ledger[i]))
	}
	return out
}

func (s *Store) CreateOrder(ctx context.Context, order *bids.Order) error {
	c := copyOrder(order)
	s.write(ctx, func() { s.orders[c.ID] = c })
	return nil
}

func (s *Store) GetOrderByID(_ context.Context, id uuid.UUID) (*bids.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, bids.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (s *Store) GetOrderByBidID(_ context.Context, bidID uuid.UUID) (*bids.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.BidID == bidID {
			return copyOrder(o), nil
		}
	}
	return nil, nil
}

func (s *Store) ListOrders(_ context.Context, filter bids.OrderFilter) ([]*bids.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*bids.Order, 0)
	for _, o := range s.orders {
		auction, ok := s.auctions[o.AuctionID]
		if !ok || auction.SellerID != filter.SellerID {
			continue
		}
		if filter.AuctionID != nil && o.AuctionID != *filter.AuctionID {
			continue
		}
		if filter.BuyerEmail != "" && o.BuyerEmail != filter.BuyerEmail {
			continue
		}
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
