package projections

import (
	"context"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

// AuctionReader reads auctions without locking
type AuctionReader interface {
	GetAuctionByID(ctx context.Context, id uuid.UUID) (*auctions.Auction, error)
}

// ItemReader reads items without locking
type ItemReader interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (*auctions.Item, error)
	ListItemsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*auctions.Item, error)
}

// BidReader reads ledgers without locking
type BidReader interface {
	GetLastBid(ctx context.Context, itemID uuid.UUID) (*bids.Bid, error)
	ListBidsByItem(ctx context.Context, itemID uuid.UUID) ([]*bids.Bid, error)
	ListBidsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*bids.Bid, error)
}

// CompReader reads comps
type CompReader interface {
	ListCompsByAuction(ctx context.Context, auctionID uuid.UUID) (map[uuid.UUID][]*auctions.Comp, error)
}

// Cache stores public auction snapshots. A miss is (nil, nil).
type Cache interface {
	GetPublicAuction(ctx context.Context, auctionID uuid.UUID) (*PublicAuction, error)
	SetPublicAuction(ctx context.Context, view *PublicAuction) error
}
