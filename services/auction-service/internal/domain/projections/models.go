package projections

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

// Winner is the bid that wins an item. Distance is set for demo guesses.
type Winner struct {
	ItemID   uuid.UUID
	Bid      *bids.Bid
	Distance *decimal.Decimal
}

// ItemBids is the seller's view of one item's ledger
type ItemBids struct {
	Item                 *auctions.Item
	Bids                 []*bids.Bid
	Highest              *bids.Bid
	CurrentPrice         *decimal.Decimal
	Winner               *Winner
	AvgCompPrice         *decimal.Decimal
	SuggestedStartingBid *decimal.Decimal
}

// AuctionBids is the seller's tracking dashboard
type AuctionBids struct {
	Auction *auctions.Auction
	Items   []*ItemBids
}

// RankedGuess is a demo guess with its distance to the target price
type RankedGuess struct {
	Bid        *bids.Bid
	Difference decimal.Decimal
}

// DemoItemResult scores the guesses on one item of a closed demo auction
type DemoItemResult struct {
	Item         *auctions.Item
	AvgCompPrice decimal.Decimal
	CompCount    int
	Guesses      []RankedGuess
	Winner       *RankedGuess
}

// DemoResults is the outcome of a closed demo auction
type DemoResults struct {
	Auction *auctions.Auction
	Items   []*DemoItemResult
}

// PublicBid is a bid as anonymous visitors see it
type PublicBid struct {
	BidID       uuid.UUID       `json:"bid_id"`
	Seq         int64           `json:"seq"`
	Kind        bids.Kind       `json:"kind"`
	BidderName  string          `json:"bidder_name"`
	MaskedEmail string          `json:"masked_email"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PublicItem is an item on the public auction page
type PublicItem struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Lot          *int             `json:"lot,omitempty"`
	StartingBid  *decimal.Decimal `json:"starting_bid,omitempty"`
	MinIncrement decimal.Decimal  `json:"min_increment"`
	BuyNowPrice  *decimal.Decimal `json:"buy_now_price,omitempty"`
	IsSold       bool             `json:"is_sold"`
	CurrentBid   *decimal.Decimal `json:"current_bid,omitempty"`
	MinNextBid   *decimal.Decimal `json:"min_next_bid,omitempty"`
	BidCount     int              `json:"bid_count"`
	Winner       *PublicBid       `json:"winner,omitempty"`
}

// PublicAuction is the snapshot served to the public auction page
type PublicAuction struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Status          auctions.Status `json:"status"`
	IsDemo          bool            `json:"is_demo"`
	StartTime       *time.Time      `json:"start_time,omitempty"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	PickupLocation  *string         `json:"pickup_location,omitempty"`
	ShippingAllowed bool            `json:"shipping_allowed"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	Items           []*PublicItem   `json:"items"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// Stale reports whether a cached snapshot no longer reflects the auction's
// state at now because its end time passed since it was built.
func (p *PublicAuction) Stale(now time.Time) bool {
	return p.Status == auctions.StatusPublished && p.EndTime != nil && now.After(*p.EndTime)
}
