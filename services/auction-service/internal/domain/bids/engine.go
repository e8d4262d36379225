package bids

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

// MaxGuess is the largest guess a demo auction accepts
var MaxGuess = decimal.NewFromInt(100000)

// PlaceBidCommand is a bid from an anonymous bidder. RequestID is optional;
// repeating it replays the bid it first produced.
type PlaceBidCommand struct {
	ItemID      uuid.UUID
	BidderEmail string
	BidderName  string
	Amount      decimal.Decimal
	RequestID   string
}

// BuyNowCommand buys an item at its buy-now price
type BuyNowCommand struct {
	ItemID     uuid.UUID
	BuyerEmail string
	BuyerName  string
	RequestID  string
}

// OutboxRepository saves events in the same transaction as the bid
type OutboxRepository interface {
	SaveEvent(ctx context.Context, event *events.OutboxEvent) error
}

// Metrics observes bid admission
type Metrics interface {
	BidAdmitted(kind Kind, demo bool)
	BidRejected(reason string)
	AdmissionDuration(d time.Duration)
	StorageRetried()
}

type noopMetrics struct{}

func (noopMetrics) BidAdmitted(Kind, bool)          {}
func (noopMetrics) BidRejected(string)              {}
func (noopMetrics) AdmissionDuration(time.Duration) {}
func (noopMetrics) StorageRetried()                 {}

// Engine admits or rejects bids and buy-now purchases. Each admission runs in
// one transaction that locks the item, so the read of the current price, the
// comparison and the append form a single critical section per item.
type Engine struct {
	txManager   database.TransactionManager
	auctionRepo AuctionRepository
	itemRepo    ItemRepository
	ledger      *Ledger
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	clock       clock.Clock
	metrics     Metrics
	logger      *slog.Logger
}

// NewEngine creates a new bidding engine. metrics may be nil.
func NewEngine(
	txManager database.TransactionManager,
	auctionRepo AuctionRepository,
	itemRepo ItemRepository,
	ledger *Ledger,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	clk clock.Clock,
	metrics Metrics,
	logger *slog.Logger,
) *Engine {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Engine{
		txManager:   txManager,
		auctionRepo: auctionRepo,
		itemRepo:    itemRepo,
		ledger:      ledger,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		clock:       clk,
		metrics:     metrics,
		logger:      logger,
	}
}

// MinAcceptable is the lowest amount a competitive item accepts after tip:
// the starting bid when there is no bid yet, otherwise the last amount plus
// the increment.
func MinAcceptable(item *auctions.Item, tip *Bid) decimal.Decimal {
	if tip == nil {
		if item.HasStartingBid() {
			return *item.StartingBid
		}
		return decimal.New(1, -2)
	}
	increment := item.MinIncrement
	if !increment.IsPositive() {
		increment = auctions.DefaultMinIncrement
	}
	return tip.Amount.Add(increment)
}

// PlaceBid admits a bid or guess on an item
func (e *Engine) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*Bid, error) {
	start := time.Now()
	defer func() { e.metrics.AdmissionDuration(time.Since(start)) }()

	email, name, err := bidderIdentity(cmd.BidderEmail, cmd.BidderName)
	if err != nil {
		return nil, e.reject(err)
	}
	if !cmd.Amount.IsPositive() || !auctions.IsCents(cmd.Amount) || cmd.Amount.GreaterThan(auctions.MaxAmount) {
		return nil, e.reject(ErrInvalidBidAmount)
	}

	var (
		bid    *Bid
		demo   bool
		replay bool
	)
	err = e.withRetry(ctx, "place_bid", func(ctx context.Context) error {
		item, err := e.itemRepo.GetItemByIDForUpdate(ctx, cmd.ItemID)
		if err != nil {
			return err
		}
		if prior, err := e.replay(ctx, item.ID, cmd.RequestID); err != nil || prior != nil {
			bid, replay = prior, prior != nil
			return err
		}

		auction, err := e.auctionRepo.GetAuctionByIDForShare(ctx, item.AuctionID)
		if err != nil {
			return err
		}
		now := e.clock.Now()
		if err := checkActive(auction, item, now); err != nil {
			return err
		}

		tip, err := e.ledger.Highest(ctx, item.ID)
		if err != nil {
			return err
		}
		demo = auction.IsDemo
		if demo {
			if cmd.Amount.GreaterThan(MaxGuess) {
				return ErrInvalidGuess
			}
		} else if minimum := MinAcceptable(item, tip); cmd.Amount.LessThan(minimum) {
			return &BidTooLowError{Minimum: minimum}
		}

		bid = newBid(auction, item, KindBid, email, name, cmd.Amount, cmd.RequestID, now)
		if _, err := e.ledger.Append(ctx, tip, bid); err != nil {
			return err
		}
		return e.saveEvent(ctx, events.EventTypeBidPlaced, auction.ID, bidPlacedFields(bid), now)
	})
	if err != nil {
		return nil, e.reject(err)
	}

	if replay {
		e.logger.Debug("Replayed bid", "item_id", bid.ItemID, "bid_id", bid.ID)
		return bid, nil
	}
	e.metrics.BidAdmitted(KindBid, demo)
	e.logger.Debug("Bid admitted", "item_id", bid.ItemID, "bid_id", bid.ID, "seq", bid.Seq, "amount", bid.Amount)
	return bid, nil
}

// BuyNow buys an item at its buy-now price. The purchase is appended to the
// ledger and the item is sold in the same transaction, so no later bid or
// purchase is admitted for it.
func (e *Engine) BuyNow(ctx context.Context, cmd BuyNowCommand) (*Purchase, error) {
	start := time.Now()
	defer func() { e.metrics.AdmissionDuration(time.Since(start)) }()

	email, name, err := bidderIdentity(cmd.BuyerEmail, cmd.BuyerName)
	if err != nil {
		return nil, e.reject(err)
	}

	var (
		purchase *Purchase
		replay   bool
	)
	err = e.withRetry(ctx, "buy_now", func(ctx context.Context) error {
		item, err := e.itemRepo.GetItemByIDForUpdate(ctx, cmd.ItemID)
		if err != nil {
			return err
		}
		prior, err := e.replay(ctx, item.ID, cmd.RequestID)
		if err != nil {
			return err
		}
		if prior != nil {
			if prior.Kind != KindBuyNow {
				return fmt.Errorf("%w: request id already used for a bid", ErrBuyNowUnavailable)
			}
			order, err := e.orderRepo.GetOrderByBidID(ctx, prior.ID)
			if err != nil {
				return err
			}
			purchase, replay = &Purchase{Bid: prior, Order: order}, true
			return nil
		}

		auction, err := e.auctionRepo.GetAuctionByIDForShare(ctx, item.AuctionID)
		if err != nil {
			return err
		}
		now := e.clock.Now()
		if err := checkActive(auction, item, now); err != nil {
			return err
		}
		if auction.IsDemo || item.BuyNowPrice == nil {
			return ErrBuyNowUnavailable
		}

		tip, err := e.ledger.Highest(ctx, item.ID)
		if err != nil {
			return err
		}
		price := *item.BuyNowPrice
		if price.LessThan(MinAcceptable(item, tip)) {
			return fmt.Errorf("%w: bidding has passed the buy now price", ErrBuyNowUnavailable)
		}

		bid := newBid(auction, item, KindBuyNow, email, name, price, cmd.RequestID, now)
		if _, err := e.ledger.Append(ctx, tip, bid); err != nil {
			return err
		}

		item.IsSold = true
		item.SoldAt = &now
		item.UpdatedAt = now
		if err := e.itemRepo.UpdateItem(ctx, item); err != nil {
			return fmt.Errorf("failed to mark item sold: %w", err)
		}

		order := &Order{
			ID:         uuid.New(),
			AuctionID:  auction.ID,
			ItemID:     item.ID,
			BidID:      bid.ID,
			BuyerID:    bid.BidderID,
			BuyerEmail: email,
			BuyerName:  name,
			Amount:     price,
			OrderType:  OrderTypeBuyNow,
			CreatedAt:  now,
		}
		if err := e.orderRepo.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if err := e.saveEvent(ctx, events.EventTypeBidPlaced, auction.ID, bidPlacedFields(bid), now); err != nil {
			return err
		}
		sold := map[string]any{
			"auction_id": auction.ID.String(),
			"item_id":    item.ID.String(),
			"order_id":   order.ID.String(),
			"bid_id":     bid.ID.String(),
			"amount":     price.StringFixed(2),
			"buyer_name": name,
			"sold_at":    now.Format(time.RFC3339Nano),
		}
		if err := e.saveEvent(ctx, events.EventTypeItemSold, auction.ID, sold, now); err != nil {
			return err
		}

		purchase = &Purchase{Bid: bid, Order: order}
		return nil
	})
	if err != nil {
		return nil, e.reject(err)
	}

	if !replay {
		e.metrics.BidAdmitted(KindBuyNow, false)
		e.logger.Info("Item sold via buy now", "item_id", cmd.ItemID, "order_id", purchase.Order.ID)
	}
	return purchase, nil
}

// withRetry runs fn in a transaction. A failure that is not a domain outcome
// is retried once with a fresh transaction, then reported as transient.
func (e *Engine) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := e.txManager.WithinTx(ctx, fn)
	if err == nil || isDomainError(err) || ctx.Err() != nil {
		return err
	}

	e.metrics.StorageRetried()
	e.logger.Warn("Retrying bid admission after storage failure", "op", op, "error", err)

	err = e.txManager.WithinTx(ctx, fn)
	if err == nil || isDomainError(err) || ctx.Err() != nil {
		return err
	}
	e.logger.Error("Bid admission failed after retry", "op", op, "error", err)
	return fmt.Errorf("%w: %w", ErrTransientStorage, err)
}

func (e *Engine) replay(ctx context.Context, itemID uuid.UUID, requestID string) (*Bid, error) {
	if requestID == "" {
		return nil, nil
	}
	return e.ledger.repo.GetBidByRequestID(ctx, itemID, requestID)
}

func (e *Engine) saveEvent(ctx context.Context, eventType string, auctionID uuid.UUID, fields map[string]any, now time.Time) error {
	event, err := events.NewOutboxEvent(eventType, auctionID, fields, now)
	if err != nil {
		return err
	}
	if err := e.outboxRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save outbox event: %w", err)
	}
	return nil
}

func (e *Engine) reject(err error) error {
	e.metrics.BidRejected(RejectionReason(err))
	if isDomainError(err) {
		e.logger.Debug("Bid rejected", "error", err)
	}
	return err
}

// checkActive latches the auction state inside the critical section: the
// auction must be published, started and not past its end time, and the item
// listed and unsold.
func checkActive(auction *auctions.Auction, item *auctions.Item, now time.Time) error {
	switch {
	case auction.Status != auctions.StatusPublished:
		return fmt.Errorf("%w: auction is %s", ErrAuctionNotActive, auction.Status)
	case !auction.Started(now):
		return fmt.Errorf("%w: auction has not started", ErrAuctionNotActive)
	case auction.Expired(now):
		return fmt.Errorf("%w: auction has ended", ErrAuctionNotActive)
	case !item.IsListed:
		return ErrItemNotListed
	case item.IsSold:
		return ErrItemSold
	}
	return nil
}

func newBid(auction *auctions.Auction, item *auctions.Item, kind Kind, email, name string, amount decimal.Decimal, requestID string, now time.Time) *Bid {
	bid := &Bid{
		ID:          uuid.New(),
		AuctionID:   auction.ID,
		ItemID:      item.ID,
		Kind:        kind,
		BidderID:    auth.BidderID(email),
		BidderEmail: email,
		BidderName:  name,
		Amount:      amount,
		CreatedAt:   now,
	}
	if requestID != "" {
		bid.RequestID = &requestID
	}
	return bid
}

func bidPlacedFields(bid *Bid) map[string]any {
	return map[string]any{
		"auction_id":  bid.AuctionID.String(),
		"item_id":     bid.ItemID.String(),
		"bid_id":      bid.ID.String(),
		"seq":         bid.Seq,
		"kind":        string(bid.Kind),
		"amount":      bid.Amount.StringFixed(2),
		"bidder_id":   bid.BidderID.String(),
		"bidder_name": bid.BidderName,
		"created_at":  bid.CreatedAt.Format(time.RFC3339Nano),
	}
}

func bidderIdentity(email, name string) (string, string, error) {
	email = auth.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" || !strings.Contains(email, "@") {
		return "", "", ErrInvalidBidder
	}
	return email, name, nil
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrAuctionNotActive,
		ErrBidTooLow,
		ErrBuyNowUnavailable,
		ErrInvalidBidAmount,
		ErrInvalidGuess,
		ErrInvalidBidder,
		ErrOrderNotFound,
		auctions.ErrAuctionNotFound,
		auctions.ErrItemNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// RejectionReason classifies an admission error for metrics
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrItemSold):
		return "item_sold"
	case errors.Is(err, ErrItemNotListed):
		return "item_not_listed"
	case errors.Is(err, ErrAuctionNotActive):
		return "auction_not_active"
	case errors.Is(err, ErrBidTooLow):
		return "bid_too_low"
	case errors.Is(err, ErrBuyNowUnavailable):
		return "buy_now_unavailable"
	case errors.Is(err, ErrInvalidBidAmount), errors.Is(err, ErrInvalidGuess), errors.Is(err, ErrInvalidBidder):
		return "invalid_request"
	case errors.Is(err, auctions.ErrItemNotFound), errors.Is(err, auctions.ErrAuctionNotFound):
		return "not_found"
	case errors.Is(err, ErrTransientStorage):
		return "transient"
	default:
		return "error"
	}
}
