package auctions

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemCommand contains the data needed to add an item to a draft auction
type CreateItemCommand struct {
	AuctionID   uuid.UUID
	Title       string
	Description string
	Lot         *int
}

// ItemSettings is a partial update of an item's pricing and listing flag.
// Nil fields are left unchanged.
type ItemSettings struct {
	StartingBid  *decimal.Decimal
	MinIncrement *decimal.Decimal
	BuyNowPrice  *decimal.Decimal
	IsListed     *bool
}

// NewComp is a comparable sale reported by the research collaborator
type NewComp struct {
	Title     string
	Source    string
	SoldPrice decimal.Decimal
	SoldDate  *time.Time
	URL       string
}

// CreateItem adds an item to one of the seller's draft auctions
func (s *Service) CreateItem(ctx context.Context, sellerID uuid.UUID, cmd CreateItemCommand) (*Item, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, newValidationError("title is required")
	}
	if cmd.Lot != nil && *cmd.Lot < 0 {
		return nil, newValidationError("lot must not be negative")
	}

	var item *Item
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.ownedForShare(ctx, sellerID, cmd.AuctionID)
		if err != nil {
			return err
		}
		if auction.Status != StatusDraft {
			return invalidState("add items to", auction.Status)
		}

		now := s.clock.Now()
		item = &Item{
			ID:           uuid.New(),
			AuctionID:    auction.ID,
			Title:        title,
			Description:  strings.TrimSpace(cmd.Description),
			Lot:          cmd.Lot,
			MinIncrement: DefaultMinIncrement,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.itemRepo.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, cmd.AuctionID)
	return item, nil
}

// ListItems returns the items of one of the seller's auctions
func (s *Service) ListItems(ctx context.Context, sellerID, auctionID uuid.UUID) ([]*Item, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, ErrUnauthorized
	}
	return s.itemRepo.ListItemsByAuction(ctx, auctionID)
}

// UpdateItemAuctionSettings applies a partial pricing update. Pricing is
// frozen once the auction leaves draft.
func (s *Service) UpdateItemAuctionSettings(ctx context.Context, sellerID, itemID uuid.UUID, settings ItemSettings) (*Item, error) {
	items, err := s.BatchUpdateItemAuctionSettings(ctx, sellerID, []uuid.UUID{itemID}, settings)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// BatchUpdateItemAuctionSettings applies the same partial update to every
// item in one transaction: either all items change or none do.
func (s *Service) BatchUpdateItemAuctionSettings(ctx context.Context, sellerID uuid.UUID, itemIDs []uuid.UUID, settings ItemSettings) ([]*Item, error) {
	if len(itemIDs) == 0 {
		return nil, newValidationError("at least one item is required")
	}
	if problems := settings.problems(); len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	// Items are locked in id order before any auction so concurrent batches
	// and bid admissions always acquire locks in the same order.
	ids := uniqueSorted(itemIDs)
	updated := make([]*Item, 0, len(ids))
	touched := make(map[uuid.UUID]struct{})
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		locked := make([]*Item, 0, len(ids))
		for _, id := range ids {
			item, err := s.itemRepo.GetItemByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			locked = append(locked, item)
		}

		now := s.clock.Now()
		for _, item := range locked {
			auction, err := s.ownedForShare(ctx, sellerID, item.AuctionID)
			if err != nil {
				return err
			}
			if auction.Status != StatusDraft {
				return fmt.Errorf("%w: item pricing is frozen once the auction is %s", ErrInvalidState, auction.EffectiveStatus(now))
			}

			settings.apply(item)
			if item.StartingBid != nil && item.BuyNowPrice != nil && item.BuyNowPrice.LessThan(*item.StartingBid) {
				return newValidationError(fmt.Sprintf("item %q: buy now price must not be below the starting bid", item.Title))
			}
			item.UpdatedAt = now
			if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}
			updated = append(updated, item)
			touched[item.AuctionID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for auctionID := range touched {
		s.invalidate(ctx, auctionID)
	}
	return updated, nil
}

func uniqueSorted(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}

func (st ItemSettings) problems() []string {
	var problems []string
	check := func(field string, v *decimal.Decimal) {
		if v == nil {
			return
		}
		if !v.IsPositive() {
			problems = append(problems, field+" must be positive")
		} else if !IsCents(*v) {
			problems = append(problems, field+" must have at most 2 decimal places")
		} else if v.GreaterThan(MaxAmount) {
			problems = append(problems, field+" must not exceed "+MaxAmount.StringFixed(2))
		}
	}
	check("starting_bid", st.StartingBid)
	check("min_increment", st.MinIncrement)
	check("buy_now_price", st.BuyNowPrice)
	if st.StartingBid != nil && st.BuyNowPrice != nil && st.BuyNowPrice.LessThan(*st.StartingBid) {
		problems = append(problems, "buy_now_price must not be below starting_bid")
	}
	return problems
}

func (st ItemSettings) apply(item *Item) {
	if st.StartingBid != nil {
		v := *st.StartingBid
		item.StartingBid = &v
	}
	if st.MinIncrement != nil {
		item.MinIncrement = *st.MinIncrement
	}
	if st.BuyNowPrice != nil {
		v := *st.BuyNowPrice
		item.BuyNowPrice = &v
	}
	if st.IsListed != nil {
		item.IsListed = *st.IsListed
	}
}

// IsCents reports whether d has no more than two decimal places.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2))
}

// RecordComps replaces the comps of an item with a fresh research result.
// Comps of a closed auction are kept as they were at close.
func (s *Service) RecordComps(ctx context.Context, sellerID, itemID uuid.UUID, comps []NewComp) ([]*Comp, error) {
	var problems []string
	for i, c := range comps {
		if c.SoldPrice.IsNegative() {
			problems = append(problems, fmt.Sprintf("comp %d: sold price must not be negative", i+1))
		} else if c.SoldPrice.GreaterThan(MaxAmount) {
			problems = append(problems, fmt.Sprintf("comp %d: sold price must not exceed %s", i+1, MaxAmount.StringFixed(2)))
		}
	}
	if len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	var stored []*Comp
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		auction, err := s.ownedForShare(ctx, sellerID, item.AuctionID)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		if status := auction.EffectiveStatus(now); status == StatusClosed {
			return invalidState("record comps for", status)
		}

		stored = make([]*Comp, 0, len(comps))
		for _, c := range comps {
			stored = append(stored, &Comp{
				ID:        uuid.New(),
				ItemID:    itemID,
				Title:     strings.TrimSpace(c.Title),
				Source:    strings.TrimSpace(c.Source),
				SoldPrice: c.SoldPrice.Round(2),
				SoldDate:  c.SoldDate,
				URL:       strings.TrimSpace(c.URL),
				CreatedAt: now,
			})
		}
		if err := s.compRepo.ReplaceComps(ctx, itemID, stored); err != nil {
			return fmt.Errorf("failed to store comps: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// SuggestedStartingBid is 80% of the average comp price rounded down to a
// multiple of 5, or nil without comps.
func SuggestedStartingBid(comps []*Comp) *decimal.Decimal {
	if len(comps) == 0 {
		return nil
	}
	five := decimal.NewFromInt(5)
	v := AverageSoldPrice(comps).Mul(decimal.RequireFromString("0.8")).Div(five).Floor().Mul(five)
	return &v
}

func (s *Service) ownedForShare(ctx context.Context, sellerID, auctionID uuid.UUID) (*Auction, error) {
	auction, err := s.auctionRepo.GetAuctionByIDForShare(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, ErrUnauthorized
	}
	return auction, nil
}
