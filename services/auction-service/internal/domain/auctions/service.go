package auctions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/pkg/events"
)

// CreateAuctionCommand contains the data needed to create a draft auction
type CreateAuctionCommand struct {
	Name   string
	IsDemo bool
}

// AuctionSettings is a partial update of an auction's schedule and logistics.
// Nil fields are left unchanged.
type AuctionSettings struct {
	StartTime       *time.Time
	EndTime         *time.Time
	PickupLocation  *string
	ShippingAllowed *bool
}

// Service owns the auction state machine: draft -> published -> closed.
type Service struct {
	txManager   database.TransactionManager
	auctionRepo AuctionRepository
	itemRepo    ItemRepository
	compRepo    CompRepository
	outboxRepo  OutboxRepository
	invalidator SnapshotInvalidator
	clock       clock.Clock
	logger      *slog.Logger
}

// NewService creates a new lifecycle service. invalidator may be nil.
func NewService(
	txManager database.TransactionManager,
	auctionRepo AuctionRepository,
	itemRepo ItemRepository,
	compRepo CompRepository,
	outboxRepo OutboxRepository,
	invalidator SnapshotInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		txManager:   txManager,
		auctionRepo: auctionRepo,
		itemRepo:    itemRepo,
		compRepo:    compRepo,
		outboxRepo:  outboxRepo,
		invalidator: invalidator,
		clock:       clk,
		logger:      logger,
	}
}

// CreateAuction creates a draft auction owned by sellerID
func (s *Service) CreateAuction(ctx context.Context, sellerID uuid.UUID, cmd CreateAuctionCommand) (*Auction, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, newValidationError("name is required")
	}

	now := s.clock.Now()
	auction := &Auction{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Name:      name,
		Status:    StatusDraft,
		IsDemo:    cmd.IsDemo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.auctionRepo.CreateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}

	s.logger.Info("Auction created", "auction_id", auction.ID, "seller_id", sellerID, "is_demo", auction.IsDemo)
	return auction, nil
}

// GetAuction returns one of the seller's auctions. A published auction past
// its end time is persisted as closed before it is returned.
func (s *Service) GetAuction(ctx context.Context, sellerID, auctionID uuid.UUID) (*Auction, error) {
	auction, err := s.auctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, ErrUnauthorized
	}
	if auction.Status == StatusPublished && auction.Expired(s.clock.Now()) {
		return s.closeExpired(ctx, auctionID)
	}
	return auction, nil
}

// ListSellerAuctions returns the seller's auctions, newest first
func (s *Service) ListSellerAuctions(ctx context.Context, sellerID uuid.UUID) ([]*Auction, error) {
	auctions, err := s.auctionRepo.ListAuctionsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	now := s.clock.Now()
	for _, a := range auctions {
		a.Status = a.EffectiveStatus(now)
	}
	return auctions, nil
}

// ListPublicAuctions returns published auctions still accepting bids
func (s *Service) ListPublicAuctions(ctx context.Context) ([]*Auction, error) {
	auctions, err := s.auctionRepo.ListOpenAuctions(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list public auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuctionSettings changes schedule and logistics. The schedule is only
// editable in draft; pickup and shipping until the auction closes.
func (s *Service) UpdateAuctionSettings(ctx context.Context, sellerID, auctionID uuid.UUID, settings AuctionSettings) (*Auction, error) {
	var updated *Auction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.ownedForUpdate(ctx, sellerID, auctionID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		status := auction.EffectiveStatus(now)
		if status == StatusClosed {
			return invalidState("update", status)
		}
		if (settings.StartTime != nil || settings.EndTime != nil) && status != StatusDraft {
			return fmt.Errorf("%w: schedule is frozen once published", ErrInvalidState)
		}

		if settings.StartTime != nil {
			t := settings.StartTime.UTC()
			auction.StartTime = &t
		}
		if settings.EndTime != nil {
			t := settings.EndTime.UTC()
			auction.EndTime = &t
		}
		if auction.StartTime != nil && auction.EndTime != nil && !auction.EndTime.After(*auction.StartTime) {
			return newValidationError("end time must be after start time")
		}
		if settings.PickupLocation != nil {
			loc := strings.TrimSpace(*settings.PickupLocation)
			if loc == "" {
				auction.PickupLocation = nil
			} else {
				auction.PickupLocation = &loc
			}
		}
		if settings.ShippingAllowed != nil {
			auction.ShippingAllowed = *settings.ShippingAllowed
		}
		auction.UpdatedAt = now

		if err := s.auctionRepo.UpdateAuction(ctx, auction); err != nil {
			return fmt.Errorf("failed to update auction: %w", err)
		}
		updated = auction
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, auctionID)
	return updated, nil
}

// Publish moves a draft auction to published once every precondition holds:
// at least one listed item, a positive starting bid on every listed item of a
// non-demo auction, and an end time still in the future.
func (s *Service) Publish(ctx context.Context, sellerID, auctionID uuid.UUID) (*Auction, error) {
	var published *Auction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.ownedForUpdate(ctx, sellerID, auctionID)
		if err != nil {
			return err
		}
		if auction.Status != StatusDraft {
			return invalidState("publish", auction.Status)
		}

		items, err := s.itemRepo.ListItemsByAuction(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		now := s.clock.Now()
		if problems := publishProblems(auction, items, now); len(problems) > 0 {
			return newValidationError(problems...)
		}

		auction.Status = StatusPublished
		auction.PublishedAt = &now
		auction.UpdatedAt = now
		if err := s.auctionRepo.UpdateAuction(ctx, auction); err != nil {
			return fmt.Errorf("failed to publish auction: %w", err)
		}

		fields := map[string]any{
			"auction_id":   auction.ID.String(),
			"name":         auction.Name,
			"is_demo":      auction.IsDemo,
			"published_at": now.Format(time.RFC3339Nano),
		}
		if auction.EndTime != nil {
			fields["end_time"] = auction.EndTime.Format(time.RFC3339Nano)
		}
		if err := s.saveEvent(ctx, events.EventTypeAuctionPublished, auction.ID, fields, now); err != nil {
			return err
		}
		published = auction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, auctionID)
	s.logger.Info("Auction published", "auction_id", auctionID)
	return published, nil
}

func publishProblems(auction *Auction, items []*Item, now time.Time) []string {
	var problems []string
	listed := 0
	for _, item := range items {
		if !item.IsListed {
			continue
		}
		listed++
		if !auction.IsDemo && !item.HasStartingBid() {
			problems = append(problems, fmt.Sprintf("item %q has no starting bid", item.Title))
		}
	}
	if listed == 0 {
		problems = append([]string{"at least one item must be listed"}, problems...)
	}
	if auction.EndTime != nil && !auction.EndTime.After(now) {
		problems = append(problems, "end time is in the past")
	}
	return problems
}

// Close moves a published auction to closed. Taking the exclusive auction
// lock waits for in-flight bid admissions, so closed_at is after every
// admitted bid. An auction that already expired closes at its end time.
func (s *Service) Close(ctx context.Context, sellerID, auctionID uuid.UUID) (*Auction, error) {
	var closed *Auction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.ownedForUpdate(ctx, sellerID, auctionID)
		if err != nil {
			return err
		}
		if auction.Status != StatusPublished {
			return invalidState("close", auction.Status)
		}
		closed, err = s.markClosed(ctx, auction, "manual")
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, auctionID)
	s.logger.Info("Auction closed", "auction_id", auctionID, "closed_at", closed.ClosedAt)
	return closed, nil
}

// CloseExpired persists the closed status of up to limit published auctions
// whose end time has passed. It returns how many were closed.
func (s *Service) CloseExpired(ctx context.Context, limit int) (int, error) {
	ids, err := s.auctionRepo.ListExpiredAuctionIDs(ctx, s.clock.Now(), limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired auctions: %w", err)
	}

	closed := 0
	for _, id := range ids {
		if _, err := s.closeExpired(ctx, id); err != nil {
			s.logger.Error("Failed to close expired auction", "auction_id", id, "error", err)
			continue
		}
		closed++
	}
	return closed, nil
}

func (s *Service) closeExpired(ctx context.Context, auctionID uuid.UUID) (*Auction, error) {
	var result *Auction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.GetAuctionByIDForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		// Re-checked under the lock: a concurrent close may have won.
		if auction.Status != StatusPublished || !auction.Expired(s.clock.Now()) {
			result = auction
			return nil
		}
		result, err = s.markClosed(ctx, auction, "expired")
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, auctionID)
	return result, nil
}

func (s *Service) markClosed(ctx context.Context, auction *Auction, reason string) (*Auction, error) {
	now := s.clock.Now()
	closedAt := now
	if auction.EndTime != nil && auction.EndTime.Before(now) {
		closedAt = *auction.EndTime
	}

	auction.Status = StatusClosed
	auction.ClosedAt = &closedAt
	auction.UpdatedAt = now
	if err := s.auctionRepo.UpdateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to close auction: %w", err)
	}

	fields := map[string]any{
		"auction_id": auction.ID.String(),
		"closed_at":  closedAt.Format(time.RFC3339Nano),
		"reason":     reason,
	}
	if err := s.saveEvent(ctx, events.EventTypeAuctionClosed, auction.ID, fields, now); err != nil {
		return nil, err
	}
	return auction, nil
}

// Delete removes a draft auction with everything it owns. A closed auction
// is archived instead so its bids and orders survive; a published auction
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, sellerID, auctionID uuid.UUID) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.ownedForUpdate(ctx, sellerID, auctionID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		switch auction.EffectiveStatus(now) {
		case StatusDraft:
			if err := s.auctionRepo.DeleteAuction(ctx, auctionID); err != nil {
				return fmt.Errorf("failed to delete auction: %w", err)
			}
			return nil
		case StatusClosed:
			if auction.ArchivedAt != nil {
				return nil
			}
			if auction.Status == StatusPublished {
				if _, err := s.markClosed(ctx, auction, "expired"); err != nil {
					return err
				}
			}
			auction.ArchivedAt = &now
			auction.UpdatedAt = now
			if err := s.auctionRepo.UpdateAuction(ctx, auction); err != nil {
				return fmt.Errorf("failed to archive auction: %w", err)
			}
			return nil
		default:
			return invalidState("delete", auction.Status)
		}
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, auctionID)
	s.logger.Info("Auction deleted", "auction_id", auctionID)
	return nil
}

func (s *Service) ownedForUpdate(ctx context.Context, sellerID, auctionID uuid.UUID) (*Auction, error) {
	auction, err := s.auctionRepo.GetAuctionByIDForUpdate(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, ErrUnauthorized
	}
	return auction, nil
}

func (s *Service) saveEvent(ctx context.Context, eventType string, auctionID uuid.UUID, fields map[string]any, now time.Time) error {
	event, err := events.NewOutboxEvent(eventType, auctionID, fields, now)
	if err != nil {
		return err
	}
	if err := s.outboxRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save outbox event: %w", err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, auctionID uuid.UUID) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, auctionID); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to invalidate public snapshot", "auction_id", auctionID, "error", err)
	}
}
