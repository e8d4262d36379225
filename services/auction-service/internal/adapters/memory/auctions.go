package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

func (s *Store) CreateAuction(ctx context.Context, auction *auctions.Auction) error {
	c := copyAuction(auction)
	s.write(ctx, func() { s.auctions[c.ID] = c })
	return nil
}

func (s *Store) GetAuctionByID(_ context.Context, id uuid.UUID) (*auctions.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.auctions[id]
	if !ok {
		return nil, auctions.ErrAuctionNotFound
	}
	return copyAuction(a), nil
}

func (s *Store) GetAuctionByIDForUpdate(ctx context.Context, id uuid.UUID) (*auctions.Auction, error) {
	if err := s.lock(ctx, s.auctionLock(id), sharedWeight); err != nil {
		return nil, err
	}
	return s.GetAuctionByID(ctx, id)
}

func (s *Store) GetAuctionByIDForShare(ctx context.Context, id uuid.UUID) (*auctions.Auction, error) {
	if err := s.lock(ctx, s.auctionLock(id), 1); err != nil {
		return nil, err
	}
	return s.GetAuctionByID(ctx, id)
}

func (s *Store) ListAuctionsBySeller(_ context.Context, sellerID uuid.UUID) ([]*auctions.Auction, error) {
	return s.listAuctions(func(a *auctions.Auction) bool {
		return a.SellerID == sellerID && a.ArchivedAt == nil
	}), nil
}

func (s *Store) ListOpenAuctions(_ context.Context, now time.Time) ([]*auctions.Auction, error) {
	return s.listAuctions(func(a *auctions.Auction) bool {
		return a.Status == auctions.StatusPublished && a.ArchivedAt == nil && !a.Expired(now)
	}), nil
}

func (s *Store) ListExpiredAuctionIDs(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	expired := s.listAuctions(func(a *auctions.Auction) bool {
		return a.Status == auctions.StatusPublished && a.Expired(now)
	})
	ids := make([]uuid.UUID, 0, len(expired))
	for _, a := range expired {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (s *Store) UpdateAuction(ctx context.Context, auction *auctions.Auction) error {
	s.mu.RLock()
	_, ok := s.auctions[auction.ID]
	s.mu.RUnlock()
	if !ok {
		return auctions.ErrAuctionNotFound
	}
	c := copyAuction(auction)
	s.write(ctx, func() { s.auctions[c.ID] = c })
	return nil
}

func (s *Store) DeleteAuction(ctx context.Context, id uuid.UUID) error {
	s.write(ctx, func() {
		delete(s.auctions, id)
		for itemID, item := range s.items {
			if item.AuctionID != id {
				continue
			}
			delete(s.items, itemID)
			delete(s.comps, itemID)
			delete(s.bids, itemID)
		}
	})
	return nil
}

// listAuctions returns matching auctions, newest first
func (s *Store) listAuctions(match func(*auctions.Auction) bool) []*auctions.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*auctions.Auction, 0)
	for _, a := range s.auctions {
		if match(a) {
			out = append(out, copyAuction(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
