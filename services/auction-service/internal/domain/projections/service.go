// Package projections builds the read views of auctions and ledgers. Reads
// take no locks and never block bid admission.
package projections

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

var (
	ErrNotDemo         = errors.New("auction is not a demo auction")
	ErrResultsNotReady = errors.New("results are available once the auction is closed")
)

// Service computes read views from the ledger and the auction stores
type Service struct {
	auctionRepo AuctionReader
	itemRepo    ItemReader
	bidRepo     BidReader
	compRepo    CompReader
	cache       Cache
	clock       clock.Clock
	logger      *slog.Logger
	group       singleflight.Group
}

// NewService creates a projection service. cache may be nil.
func NewService(
	auctionRepo AuctionReader,
	itemRepo ItemReader,
	bidRepo BidReader,
	compRepo CompReader,
	cache Cache,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		auctionRepo: auctionRepo,
		itemRepo:    itemRepo,
		bidRepo:     bidRepo,
		compRepo:    compRepo,
		cache:       cache,
		clock:       clk,
		logger:      logger,
	}
}

// CurrentPrice is the last admitted amount, or the starting bid without
// bids. It is nil when the item has neither.
func (s *Service) CurrentPrice(ctx context.Context, itemID uuid.UUID) (*decimal.Decimal, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	last, err := s.bidRepo.GetLastBid(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last bid: %w", err)
	}
	return currentPrice(item, last), nil
}

// AllBidsForAuction groups the auction's bids by item, most recent first
func (s *Service) AllBidsForAuction(ctx context.Context, auctionID uuid.UUID) (map[uuid.UUID][]*bids.Bid, error) {
	all, err := s.bidRepo.ListBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	byItem := make(map[uuid.UUID][]*bids.Bid)
	for _, b := range all {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}
	return byItem, nil
}

// Winners returns the winning bid per item that has one. Competitive items
// are won by the last bid admitted before the close time (the leading bid
// while still open); demo items by the guess closest to the average comp
// price, and only once the auction is closed.
func (s *Service) Winners(ctx context.Context, auctionID uuid.UUID) ([]*Winner, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListItemsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	byItem, err := s.AllBidsForAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	comps, err := s.compsFor(ctx, auction)
	if err != nil {
		return nil, err
	}

	cutoff := auction.CloseTime(s.clock.Now())
	var winners []*Winner
	for _, item := range items {
		if w := winnerOf(auction, item, byItem[item.ID], comps[item.ID], cutoff); w != nil {
			winners = append(winners, w)
		}
	}
	return winners, nil
}

// AuctionBids is the seller's dashboard: every item with its history,
// leading bid, current price and winner
func (s *Service) AuctionBids(ctx context.Context, sellerID, auctionID uuid.UUID) (*AuctionBids, error) {
	auction, err := s.ownedAuction(ctx, sellerID, auctionID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListItemsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	byItem, err := s.AllBidsForAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	comps, err := s.compRepo.ListCompsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comps: %w", err)
	}

	now := s.clock.Now()
	cutoff := auction.CloseTime(now)
	auction.Status = auction.EffectiveStatus(now)

	view := &AuctionBids{Auction: auction, Items: make([]*ItemBids, 0, len(items))}
	for _, item := range items {
		history := settled(byItem[item.ID], cutoff)
		ib := &ItemBids{
			Item:                 item,
			Bids:                 history,
			SuggestedStartingBid: auctions.SuggestedStartingBid(comps[item.ID]),
		}
		var last *bids.Bid
		if len(history) > 0 {
			last = history[0]
		}
		ib.Highest = last
		if auction.IsDemo {
			ib.Highest = largestGuess(history)
		}
		ib.CurrentPrice = currentPrice(item, last)
		if len(comps[item.ID]) > 0 {
			avg := auctions.AverageSoldPrice(comps[item.ID]).Round(2)
			ib.AvgCompPrice = &avg
		}
		ib.Winner = winnerOf(auction, item, history, comps[item.ID], cutoff)
		view.Items = append(view.Items, ib)
	}
	return view, nil
}

// DemoResults ranks the guesses of a closed demo auction by distance to the
// average comp price of each item
func (s *Service) DemoResults(ctx context.Context, sellerID, auctionID uuid.UUID) (*DemoResults, error) {
	auction, err := s.ownedAuction(ctx, sellerID, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsDemo {
		return nil, ErrNotDemo
	}
	cutoff := auction.CloseTime(s.clock.Now())
	if cutoff == nil {
		return nil, ErrResultsNotReady
	}
	auction.Status = auctions.StatusClosed

	items, err := s.itemRepo.ListItemsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	byItem, err := s.AllBidsForAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	comps, err := s.compRepo.ListCompsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comps: %w", err)
	}

	results := &DemoResults{Auction: auction}
	for _, item := range items {
		if !item.IsListed {
			continue
		}
		target := auctions.AverageSoldPrice(comps[item.ID])
		r := &DemoItemResult{
			Item:         item,
			AvgCompPrice: target.Round(2),
			CompCount:    len(comps[item.ID]),
		}
		for _, b := range bids.RankByDistance(settled(byItem[item.ID], cutoff), target) {
			r.Guesses = append(r.Guesses, RankedGuess{Bid: b, Difference: b.DistanceTo(target).Round(2)})
		}
		if len(r.Guesses) > 0 && r.CompCount > 0 {
			r.Winner = &r.Guesses[0]
		}
		results.Items = append(results.Items, r)
	}
	return results, nil
}

// PublicAuction returns the public snapshot of an auction. Snapshots are
// cached briefly and concurrent misses share one build.
func (s *Service) PublicAuction(ctx context.Context, auctionID uuid.UUID) (*PublicAuction, error) {
	now := s.clock.Now()
	if s.cache != nil {
		cached, err := s.cache.GetPublicAuction(ctx, auctionID)
		if err != nil {
			s.logger.Warn("Public snapshot cache read failed", "auction_id", auctionID, "error", err)
		} else if cached != nil && !cached.Stale(now) {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(auctionID.String(), func() (any, error) {
		view, err := s.buildPublicAuction(ctx, auctionID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.SetPublicAuction(ctx, view); err != nil {
				s.logger.Warn("Public snapshot cache write failed", "auction_id", auctionID, "error", err)
			}
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PublicAuction), nil
}

func (s *Service) buildPublicAuction(ctx context.Context, auctionID uuid.UUID) (*PublicAuction, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction.ArchivedAt != nil {
		return nil, auctions.ErrAuctionNotFound
	}
	items, err := s.itemRepo.ListItemsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	byItem, err := s.AllBidsForAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	comps, err := s.compsFor(ctx, auction)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	cutoff := auction.CloseTime(now)
	view := &PublicAuction{
		ID:              auction.ID,
		Name:            auction.Name,
		Status:          auction.EffectiveStatus(now),
		IsDemo:          auction.IsDemo,
		StartTime:       auction.StartTime,
		EndTime:         auction.EndTime,
		PickupLocation:  auction.PickupLocation,
		ShippingAllowed: auction.ShippingAllowed,
		ClosedAt:        cutoff,
		Items:           []*PublicItem{},
		GeneratedAt:     now,
	}

	for _, item := range items {
		// Drafts are previewed in full; once published only listed items show.
		if view.Status != auctions.StatusDraft && !item.IsListed {
			continue
		}
		history := settled(byItem[item.ID], cutoff)
		pi := &PublicItem{
			ID:           item.ID,
			Title:        item.Title,
			Description:  item.Description,
			Lot:          item.Lot,
			StartingBid:  item.StartingBid,
			MinIncrement: item.MinIncrement,
			BuyNowPrice:  item.BuyNowPrice,
			IsSold:       item.IsSold,
			BidCount:     len(history),
		}
		if !auction.IsDemo {
			var last *bids.Bid
			if len(history) > 0 {
				last = history[0]
			}
			pi.CurrentBid = currentPrice(item, last)
			if !item.IsSold && cutoff == nil {
				next := bids.MinAcceptable(item, last)
				pi.MinNextBid = &next
			}
		}
		if cutoff != nil || item.IsSold {
			if w := winnerOf(auction, item, history, comps[item.ID], cutoff); w != nil {
				pi.Winner = ToPublicBid(w.Bid)
			}
		}
		view.Items = append(view.Items, pi)
	}
	return view, nil
}

// ItemBids returns an item's public history, most recent first
func (s *Service) ItemBids(ctx context.Context, itemID uuid.UUID) ([]*PublicBid, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	auction, err := s.auctionRepo.GetAuctionByID(ctx, item.AuctionID)
	if err != nil {
		return nil, err
	}
	if auction.ArchivedAt != nil || (auction.Status != auctions.StatusDraft && !item.IsListed) {
		return nil, auctions.ErrItemNotFound
	}
	history, err := s.bidRepo.ListBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	out := make([]*PublicBid, 0, len(history))
	for _, b := range history {
		out = append(out, ToPublicBid(b))
	}
	return out, nil
}

func (s *Service) ownedAuction(ctx context.Context, sellerID, auctionID uuid.UUID) (*auctions.Auction, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, auctions.ErrUnauthorized
	}
	return auction, nil
}

func (s *Service) compsFor(ctx context.Context, auction *auctions.Auction) (map[uuid.UUID][]*auctions.Comp, error) {
	if !auction.IsDemo {
		return nil, nil
	}
	comps, err := s.compRepo.ListCompsByAuction(ctx, auction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comps: %w", err)
	}
	return comps, nil
}

func currentPrice(item *auctions.Item, last *bids.Bid) *decimal.Decimal {
	if last != nil {
		amount := last.Amount
		return &amount
	}
	if item.StartingBid != nil {
		start := *item.StartingBid
		return &start
	}
	return nil
}

// settled drops bids created after cutoff. history is most recent first.
// largestGuess is the highest demo guess, the earliest one on ties
func largestGuess(history []*bids.Bid) *bids.Bid {
	var best *bids.Bid
	for _, b := range history {
		if best == nil || !b.Amount.LessThan(best.Amount) {
			best = b
		}
	}
	return best
}

func settled(history []*bids.Bid, cutoff *time.Time) []*bids.Bid {
	if cutoff == nil {
		return history
	}
	i := 0
	for i < len(history) && history[i].CreatedAt.After(*cutoff) {
		i++
	}
	return history[i:]
}

// winnerOf picks the item's winner from its settled history
func winnerOf(auction *auctions.Auction, item *auctions.Item, history []*bids.Bid, comps []*auctions.Comp, cutoff *time.Time) *Winner {
	history = settled(history, cutoff)
	if len(history) == 0 {
		return nil
	}
	if !auction.IsDemo {
		return &Winner{ItemID: item.ID, Bid: history[0]}
	}
	if cutoff == nil || len(comps) == 0 {
		return nil
	}
	target := auctions.AverageSoldPrice(comps)
	best := bids.RankByDistance(history, target)[0]
	d := best.DistanceTo(target).Round(2)
	return &Winner{ItemID: item.ID, Bid: best, Distance: &d}
}

// ToPublicBid hides the bidder's email
func ToPublicBid(b *bids.Bid) *PublicBid {
	return &PublicBid{
		BidID:       b.ID,
		Seq:         b.Seq,
		Kind:        b.Kind,
		BidderName:  b.BidderName,
		MaskedEmail: MaskEmail(b.BidderEmail),
		Amount:      b.Amount,
		CreatedAt:   b.CreatedAt,
	}
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
