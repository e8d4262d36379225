package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

func (s *Store) CreateItem(ctx context.Context, item *auctions.Item) error {
	c := copyItem(item)
	s.write(ctx, func() { s.items[c.ID] = c })
	return nil
}

func (s *Store) GetItemByID(_ context.Context, id uuid.UUID) (*auctions.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, auctions.ErrItemNotFound
	}
	return copyItem(item), nil
}

func (s *Store) GetItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*auctions.Item, error) {
	if err := s.lock(ctx, s.itemLock(id), 1); err != nil {
		return nil, err
	}
	return s.GetItemByID(ctx, id)
}

func (s *Store) ListItemsByAuction(_ context.Context, auctionID uuid.UUID) ([]*auctions.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*auctions.Item, 0)
	for _, item := range s.items {
		if item.AuctionID == auctionID {
			out = append(out, copyItem(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Lot != nil && b.Lot != nil && *a.Lot != *b.Lot:
			return *a.Lot < *b.Lot
		case a.Lot != nil && b.Lot == nil:
			return true
		case a.Lot == nil && b.Lot != nil:
			return false
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateItem(ctx context.Context, item *auctions.Item) error {
	s.mu.RLock()
	_, ok := s.items[item.ID]
	s.mu.RUnlock()
	if !ok {
		return auctions.ErrItemNotFound
	}
	c := copyItem(item)
	s.write(ctx, func() { s.items[c.ID] = c })
	return nil
}

func (s *Store) ReplaceComps(ctx context.Context, itemID uuid.UUID, comps []*auctions.Comp) error {
	stored := make([]*auctions.Comp, 0, len(comps))
	for _, c := range comps {
		cc := *c
		stored = append(stored, &cc)
	}
	s.write(ctx, func() { s.comps[itemID] = stored })
	return nil
}

func (s *Store) ListCompsByItem(_ context.Context, itemID uuid.UUID) ([]*auctions.Comp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyComps(s.comps[itemID]), nil
}

func (s *Store) ListCompsByAuction(_ context.Context, auctionID uuid.UUID) (map[uuid.UUID][]*auctions.Comp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID][]*auctions.Comp)
	for itemID, comps := range s.comps {
		if item, ok := s.items[itemID]; ok && item.AuctionID == auctionID && len(comps) > 0 {
			out[itemID] = copyComps(comps)
		}
	}
	return out, nil
}

func copyComps(comps []*auctions.Comp) []*auctions.Comp {
	out := make([]*auctions.Comp, 0, len(comps))
	for _, c := range comps {
		cc := *c
		out = append(out, &cc)
	}
	return out
}
