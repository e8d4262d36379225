package auctions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an auction.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
)

// DefaultMinIncrement applies to items whose seller never set one.
var DefaultMinIncrement = decimal.NewFromInt(1)

// MaxAmount is the largest amount storage holds (NUMERIC(12, 2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Auction is owned by a seller and exclusively owns its items.
type Auction struct {
	ID              uuid.UUID  `db:"id"`
	SellerID        uuid.UUID  `db:"seller_id"`
	Name            string     `db:"name"`
	Status          Status     `db:"status"`
	IsDemo          bool       `db:"is_demo"`
	StartTime       *time.Time `db:"start_time"`
	EndTime         *time.Time `db:"end_time"`
	PickupLocation  *string    `db:"pickup_location"`
	ShippingAllowed bool       `db:"shipping_allowed"`
	PublishedAt     *time.Time `db:"published_at"`
	ClosedAt        *time.Time `db:"closed_at"`
	ArchivedAt      *time.Time `db:"archived_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// IsOwnedBy checks if the auction belongs to the given seller
func (a *Auction) IsOwnedBy(sellerID uuid.UUID) bool {
	return a.SellerID == sellerID
}

// Expired reports whether the end time has passed at now.
func (a *Auction) Expired(now time.Time) bool {
	return a.EndTime != nil && now.After(*a.EndTime)
}

// Started reports whether bidding may have begun at now.
func (a *Auction) Started(now time.Time) bool {
	return a.StartTime == nil || !now.Before(*a.StartTime)
}

// EffectiveStatus is the status with wall-clock expiry applied: a published
// auction past its end time is closed whether or not that was persisted.
func (a *Auction) EffectiveStatus(now time.Time) Status {
	if a.Status == StatusPublished && a.Expired(now) {
		return StatusClosed
	}
	return a.Status
}

// CloseTime returns the instant after which no bid counts, or nil while the
// auction is still open at now.
func (a *Auction) CloseTime(now time.Time) *time.Time {
	switch {
	case a.ClosedAt != nil:
		return a.ClosedAt
	case a.Status == StatusPublished && a.Expired(now):
		return a.EndTime
	default:
		return nil
	}
}

// Item is a lot in an auction together with its pricing state.
type Item struct {
	ID           uuid.UUID        `db:"id"`
	AuctionID    uuid.UUID        `db:"auction_id"`
	Title        string           `db:"title"`
	Description  string           `db:"description"`
	Lot          *int             `db:"lot"`
	StartingBid  *decimal.Decimal `db:"starting_bid"`
	MinIncrement decimal.Decimal  `db:"min_increment"`
	BuyNowPrice  *decimal.Decimal `db:"buy_now_price"`
	IsListed     bool             `db:"is_listed"`
	IsSold       bool             `db:"is_sold"`
	SoldAt       *time.Time       `db:"sold_at"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

// HasStartingBid reports whether the item carries a positive starting bid.
func (i *Item) HasStartingBid() bool {
	return i.StartingBid != nil && i.StartingBid.IsPositive()
}

// Comp is a comparable sale produced by the external research collaborator.
type Comp struct {
	ID        uuid.UUID       `db:"id"`
	ItemID    uuid.UUID       `db:"item_id"`
	Title     string          `db:"title"`
	Source    string          `db:"source"`
	SoldPrice decimal.Decimal `db:"sold_price"`
	SoldDate  *time.Time      `db:"sold_date"`
	URL       string          `db:"url"`
	CreatedAt time.Time       `db:"created_at"`
}

// AverageSoldPrice returns the mean sold price of comps, or zero when there
// are none.
func AverageSoldPrice(comps []*Comp) decimal.Decimal {
	if len(comps) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, c := range comps {
		sum = sum.Add(c.SoldPrice)
	}
	return sum.Div(decimal.NewFromInt(int64(len(comps))))
}
