package auctions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/events"
)

// AuctionRepository defines the interface for auction persistence. Every
// method runs inside the transaction carried by ctx when there is one.
type AuctionRepository interface {
	CreateAuction(ctx context.Context, auction *Auction) error

	// GetAuctionByID returns ErrAuctionNotFound when the auction does not exist
	GetAuctionByID(ctx context.Context, id uuid.UUID) (*Auction, error)

	// GetAuctionByIDForUpdate locks the auction exclusively until the
	// surrounding transaction ends. Lifecycle transitions take this lock.
	GetAuctionByIDForUpdate(ctx context.Context, id uuid.UUID) (*Auction, error)

	// GetAuctionByIDForShare takes a shared lock: concurrent bid admissions
	// proceed in parallel but a transition waits for all of them.
	GetAuctionByIDForShare(ctx context.Context, id uuid.UUID) (*Auction, error)

	// ListAuctionsBySeller returns the seller's non-archived auctions, newest first
	ListAuctionsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Auction, error)

	// ListOpenAuctions returns published auctions whose end time has not passed at now, newest first
	ListOpenAuctions(ctx context.Context, now time.Time) ([]*Auction, error)

	// ListExpiredAuctionIDs returns published auctions whose end time passed before now
	ListExpiredAuctionIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)

	UpdateAuction(ctx context.Context, auction *Auction) error

	// DeleteAuction removes the auction with its items, comps and bids
	DeleteAuction(ctx context.Context, id uuid.UUID) error
}

// ItemRepository defines the interface for item persistence
type ItemRepository interface {
	CreateItem(ctx context.Context, item *Item) error

	// GetItemByID returns ErrItemNotFound when the item does not exist
	GetItemByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// GetItemByIDForUpdate locks the item until the surrounding transaction
	// ends. It is the per-item critical section of bid admission.
	GetItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*Item, error)

	// ListItemsByAuction orders items by lot (unset last) then creation time
	ListItemsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*Item, error)

	UpdateItem(ctx context.Context, item *Item) error
}

// CompRepository stores comparable sales per item
type CompRepository interface {
	// ReplaceComps swaps the item's comps for the given set
	ReplaceComps(ctx context.Context, itemID uuid.UUID, comps []*Comp) error

	ListCompsByItem(ctx context.Context, itemID uuid.UUID) ([]*Comp, error)

	// ListCompsByAuction groups the comps of every item in the auction by item id
	ListCompsByAuction(ctx context.Context, auctionID uuid.UUID) (map[uuid.UUID][]*Comp, error)
}

// OutboxRepository saves events in the same transaction as the state change
type OutboxRepository interface {
	SaveEvent(ctx context.Context, event *events.OutboxEvent) error
}

// SnapshotInvalidator drops cached public views of an auction
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, auctionID uuid.UUID) error
}
