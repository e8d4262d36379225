// Package events implements the transactional outbox and the broker side of
// auction events.
package events

// Exchange is the topic exchange every auction event is published to.
const Exchange = "auction.events"

// Routing keys.
const (
	EventTypeBidPlaced        = "bid.placed"
	EventTypeItemSold         = "item.sold"
	EventTypeAuctionPublished = "auction.published"
	EventTypeAuctionClosed    = "auction.closed"
)
