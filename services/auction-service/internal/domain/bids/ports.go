package bids

import (
	"context"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

// BidRepository is the storage behind the ledger
type BidRepository interface {
	// InsertBid fails if (item_id, seq) is already taken
	InsertBid(ctx context.Context, bid *Bid) error

	// GetLastBid returns the bid with the highest seq, or nil without bids
	GetLastBid(ctx context.Context, itemID uuid.UUID) (*Bid, error)

	// GetBidByRequestID returns nil when no bid carries the request id
	GetBidByRequestID(ctx context.Context, itemID uuid.UUID, requestID string) (*Bid, error)

	// ListBidsByItem returns the item's bids, most recent first
	ListBidsByItem(ctx context.Context, itemID uuid.UUID) ([]*Bid, error)

	// ListBidsByAuction returns every bid of the auction, most recent first per item
	ListBidsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*Bid, error)
}

// OrderFilter narrows ListOrders. Zero fields match everything.
type OrderFilter struct {
	SellerID   uuid.UUID
	AuctionID  *uuid.UUID
	BuyerEmail string
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error

	// GetOrderByID returns ErrOrderNotFound when the order does not exist
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// GetOrderByBidID returns nil when the bid produced no order
	GetOrderByBidID(ctx context.Context, bidID uuid.UUID) (*Order, error)

	// ListOrders returns matching orders, newest first
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
}

// AuctionRepository is the engine's view of auction storage
type AuctionRepository interface {
	GetAuctionByID(ctx context.Context, id uuid.UUID) (*auctions.Auction, error)
	GetAuctionByIDForShare(ctx context.Context, id uuid.UUID) (*auctions.Auction, error)
}

// ItemRepository is the engine's view of item storage
type ItemRepository interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (*auctions.Item, error)
	GetItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*auctions.Item, error)
	UpdateItem(ctx context.Context, item *auctions.Item) error
}
