package bids

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes ordinary bids from buy-now purchases in the ledger
type Kind string

const (
	KindBid    Kind = "bid"
	KindBuyNow Kind = "buy_now"
)

// Bid is one entry of an item's ledger. Bids are never updated or deleted.
type Bid struct {
	ID          uuid.UUID       `db:"id"`
	AuctionID   uuid.UUID       `db:"auction_id"`
	ItemID      uuid.UUID       `db:"item_id"`
	Seq         int64           `db:"seq"`
	Kind        Kind            `db:"kind"`
	BidderID    uuid.UUID       `db:"bidder_id"`
	BidderEmail string          `db:"bidder_email"`
	BidderName  string          `db:"bidder_name"`
	Amount      decimal.Decimal `db:"amount"`
	RequestID   *string         `db:"request_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// OrderType is how an order came about
type OrderType string

const OrderTypeBuyNow OrderType = "buy_now"

// Order records a completed purchase of an item
type Order struct {
	ID         uuid.UUID       `db:"id"`
	AuctionID  uuid.UUID       `db:"auction_id"`
	ItemID     uuid.UUID       `db:"item_id"`
	BidID      uuid.UUID       `db:"bid_id"`
	BuyerID    uuid.UUID       `db:"buyer_id"`
	BuyerEmail string          `db:"buyer_email"`
	BuyerName  string          `db:"buyer_name"`
	Amount     decimal.Decimal `db:"amount"`
	OrderType  OrderType       `db:"order_type"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Purchase is the result of a successful buy-now
type Purchase struct {
	Bid   *Bid
	Order *Order
}
