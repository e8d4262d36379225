//go:build integration

package database_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/estate-gavel/pkg/clock"
	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	pkgevents "github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/pkg/testhelpers"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/migrations"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type testServices struct {
	tm        *pkgdb.PostgresTransactionManager
	auctions  *database.PostgresAuctionRepository
	items     *database.PostgresItemRepository
	comps     *database.PostgresCompRepository
	bids      *database.PostgresBidRepository
	orders    *database.PostgresOrderRepository
	outbox    *database.PostgresOutboxRepository
	clock     *clock.Manual
	lifecycle *auctions.Service
	engine    *bids.Engine
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	testDB := testhelpers.NewTestDatabase(t, migrations.FS)
	t.Cleanup(testDB.Close)

	pool := testDB.Pool
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServices{
		tm:       pkgdb.NewPostgresTransactionManager(pool, 5*time.Second),
		auctions: database.NewPostgresAuctionRepository(pool),
		items:    database.NewPostgresItemRepository(pool),
		comps:    database.NewPostgresCompRepository(pool),
		bids:     database.NewPostgresBidRepository(pool),
		orders:   database.NewPostgresOrderRepository(pool),
		outbox:   database.NewPostgresOutboxRepository(pool),
		clock:    clock.NewManual(t0),
	}
	s.lifecycle = auctions.NewService(s.tm, s.auctions, s.items, s.comps, s.outbox, nil, s.clock, logger)
	s.engine = bids.NewEngine(s.tm, s.auctions, s.items, bids.NewLedger(s.bids), s.orders, s.outbox, s.clock, nil, logger)
	return s
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

// publishedItem creates a published auction holding one listed item
func (s *testServices) publishedItem(t *testing.T, seller uuid.UUID, settings auctions.ItemSettings) (*auctions.Auction, *auctions.Item) {
	t.Helper()
	ctx := context.Background()
	a, err := s.lifecycle.CreateAuction(ctx, seller, auctions.CreateAuctionCommand{Name: "Estate"})
	require.NoError(t, err)
	item, err := s.lifecycle.CreateItem(ctx, seller, auctions.CreateItemCommand{AuctionID: a.ID, Title: "Clock", Lot: ptr(1)})
	require.NoError(t, err)
	settings.IsListed = ptr(true)
	item, err = s.lifecycle.UpdateItemAuctionSettings(ctx, seller, item.ID, settings)
	require.NoError(t, err)
	a, err = s.lifecycle.Publish(ctx, seller, a.ID)
	require.NoError(t, err)
	return a, item
}

func TestPostgresRepositories_AuctionRoundTrip(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()

	a, err := s.lifecycle.CreateAuction(ctx, seller, auctions.CreateAuctionCommand{Name: "Attic", IsDemo: true})
	require.NoError(t, err)

	end := t0.Add(48 * time.Hour)
	_, err = s.lifecycle.UpdateAuctionSettings(ctx, seller, a.ID, auctions.AuctionSettings{
		StartTime:      ptr(t0),
		EndTime:        &end,
		PickupLocation: ptr("Barn"),
	})
	require.NoError(t, err)

	got, err := s.auctions.GetAuctionByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Attic", got.Name)
	assert.True(t, got.IsDemo)
	assert.Equal(t, auctions.StatusDraft, got.Status)
	require.NotNil(t, got.EndTime)
	assert.True(t, end.Equal(*got.EndTime))
	assert.Equal(t, "Barn", *got.PickupLocation)

	_, err = s.auctions.GetAuctionByID(ctx, uuid.New())
	assert.ErrorIs(t, err, auctions.ErrAuctionNotFound)

	list, err := s.auctions.ListAuctionsBySeller(ctx, seller)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPostgresRepositories_ItemSettingsAndComps(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()

	a, err := s.lifecycle.CreateAuction(ctx, seller, auctions.CreateAuctionCommand{Name: "Estate"})
	require.NoError(t, err)
	item, err := s.lifecycle.CreateItem(ctx, seller, auctions.CreateItemCommand{AuctionID: a.ID, Title: "Lamp"})
	require.NoError(t, err)
	assert.True(t, item.MinIncrement.Equal(dec("1")))

	_, err = s.lifecycle.UpdateItemAuctionSettings(ctx, seller, item.ID, auctions.ItemSettings{
		StartingBid: ptr(dec("12.50")),
		BuyNowPrice: ptr(dec("99.99")),
	})
	require.NoError(t, err)

	got, err := s.items.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartingBid)
	assert.Equal(t, "12.50", got.StartingBid.StringFixed(2))
	assert.Equal(t, "99.99", got.BuyNowPrice.StringFixed(2))

	_, err = s.lifecycle.RecordComps(ctx, seller, item.ID, []auctions.NewComp{
		{Title: "A", SoldPrice: dec("70")},
		{Title: "B", SoldPrice: dec("90")},
	})
	require.NoError(t, err)
	comps, err := s.comps.ListCompsByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, comps, 2)

	// Recording again replaces the set.
	_, err = s.lifecycle.RecordComps(ctx, seller, item.ID, []auctions.NewComp{{Title: "C", SoldPrice: dec("100")}})
	require.NoError(t, err)
	byAuction, err := s.comps.ListCompsByAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, byAuction[item.ID], 1)
	assert.Equal(t, "C", byAuction[item.ID][0].Title)
}

func TestPostgresRepositories_LedgerAndOutbox(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()
	a, item := s.publishedItem(t, seller, auctions.ItemSettings{StartingBid: ptr(dec("100")), MinIncrement: ptr(dec("5"))})

	first, err := s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID: item.ID, BidderEmail: "a@example.com", BidderName: "A", Amount: dec("100"), RequestID: "r-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Seq)

	_, err = s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID: item.ID, BidderEmail: "b@example.com", BidderName: "B", Amount: dec("104.99"),
	})
	var tooLow *bids.BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	assert.Equal(t, "105.00", tooLow.Minimum.StringFixed(2))

	second, err := s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID: item.ID, BidderEmail: "b@example.com", BidderName: "B", Amount: dec("105"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)

	// Replay of the first request returns the stored bid.
	replayed, err := s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID: item.ID, BidderEmail: "a@example.com", BidderName: "A", Amount: dec("100"), RequestID: "r-1",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replayed.ID)

	last, err := s.bids.GetLastBid(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, "105.00", last.Amount.StringFixed(2))

	history, err := s.bids.ListBidsByAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].Seq)

	// A writer that read a stale tip collides on (item_id, seq).
	stale := *first
	stale.ID = uuid.New()
	stale.RequestID = nil
	err = s.bids.InsertBid(ctx, &stale)
	assert.ErrorIs(t, err, database.ErrLedgerConflict)

	var pending []*pkgevents.OutboxEvent
	err = s.tm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		pending, err = s.outbox.GetPendingEvents(ctx, 10)
		return err
	})
	require.NoError(t, err)
	types := make([]string, 0, len(pending))
	for _, e := range pending {
		types = append(types, e.EventType)
		assert.Equal(t, a.ID, e.AggregateID)
	}
	assert.ElementsMatch(t, []string{pkgevents.EventTypeAuctionPublished, pkgevents.EventTypeBidPlaced, pkgevents.EventTypeBidPlaced}, types)

	require.NoError(t, s.outbox.UpdateEventStatus(ctx, pending[0].ID, pkgevents.OutboxStatusPublished))
	assert.Error(t, s.outbox.UpdateEventStatus(ctx, uuid.New(), pkgevents.OutboxStatusPublished))
}

func TestPostgresRepositories_BuyNowCreatesOrder(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()
	a, item := s.publishedItem(t, seller, auctions.ItemSettings{StartingBid: ptr(dec("10")), BuyNowPrice: ptr(dec("50"))})

	purchase, err := s.engine.BuyNow(ctx, bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "Buyer@Example.com", BuyerName: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, bids.KindBuyNow, purchase.Bid.Kind)

	got, err := s.items.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSold)
	assert.NotNil(t, got.SoldAt)

	order, err := s.orders.GetOrderByBidID(ctx, purchase.Bid.ID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "50.00", order.Amount.StringFixed(2))
	assert.Equal(t, "buyer@example.com", order.BuyerEmail)

	orders, err := s.orders.ListOrders(ctx, bids.OrderFilter{SellerID: seller, AuctionID: &a.ID})
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = s.orders.ListOrders(ctx, bids.OrderFilter{SellerID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = s.orders.GetOrderByID(ctx, uuid.New())
	assert.ErrorIs(t, err, bids.ErrOrderNotFound)

	_, err = s.engine.PlaceBid(ctx, bids.PlaceBidCommand{ItemID: item.ID, BidderEmail: "x@example.com", BidderName: "X", Amount: dec("60")})
	assert.ErrorIs(t, err, bids.ErrItemSold)
}

func TestPostgresRepositories_ExpiredAndDelete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()
	a, _ := s.publishedItem(t, seller, auctions.ItemSettings{StartingBid: ptr(dec("10"))})

	// Pickup stays editable after publish.
	_, err := s.lifecycle.UpdateAuctionSettings(ctx, seller, a.ID, auctions.AuctionSettings{PickupLocation: ptr("Porch")})
	require.NoError(t, err)

	// Give the published auction an end time directly, then let it lapse.
	end := t0.Add(time.Hour)
	stored, err := s.auctions.GetAuctionByID(ctx, a.ID)
	require.NoError(t, err)
	stored.EndTime = &end
	require.NoError(t, s.auctions.UpdateAuction(ctx, stored))

	ids, err := s.auctions.ListExpiredAuctionIDs(ctx, t0.Add(2*time.Hour), 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, ids)

	s.clock.Advance(2 * time.Hour)
	closed, err := s.lifecycle.CloseExpired(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	got, err := s.auctions.GetAuctionByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, auctions.StatusClosed, got.Status)
	assert.True(t, end.Equal(*got.ClosedAt))

	require.NoError(t, s.lifecycle.Delete(ctx, seller, a.ID))
	got, err = s.auctions.GetAuctionByID(ctx, a.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ArchivedAt)

	draft, err := s.lifecycle.CreateAuction(ctx, seller, auctions.CreateAuctionCommand{Name: "Draft"})
	require.NoError(t, err)
	_, err = s.lifecycle.CreateItem(ctx, seller, auctions.CreateItemCommand{AuctionID: draft.ID, Title: "Vase"})
	require.NoError(t, err)
	require.NoError(t, s.lifecycle.Delete(ctx, seller, draft.ID))
	_, err = s.auctions.GetAuctionByID(ctx, draft.ID)
	assert.ErrorIs(t, err, auctions.ErrAuctionNotFound)
}

func TestPostgresEngine_ConcurrentBids(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seller := uuid.New()
	_, item := s.publishedItem(t, seller, auctions.ItemSettings{StartingBid: ptr(dec("100"))})

	_, err := s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID: item.ID, BidderEmail: "open@example.com", BidderName: "Opener", Amount: dec("100"),
	})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i-1] = s.engine.PlaceBid(ctx, bids.PlaceBidCommand{
				ItemID:      item.ID,
				BidderEmail: fmt.Sprintf("bidder%d@example.com", i),
				BidderName:  fmt.Sprintf("Bidder %d", i),
				Amount:      decimal.NewFromInt(int64(100 + i)),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, bids.ErrBidTooLow)
		}
	}

	history, err := s.bids.ListBidsByItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	for i := 0; i+1 < len(history); i++ {
		assert.Equal(t, history[i].Seq, history[i+1].Seq+1)
		assert.True(t, history[i].Amount.GreaterThan(history[i+1].Amount), "amounts must increase in ledger order")
	}

	// Every amount that was still above the tip when its turn came is admitted,
	// so the top amount always lands.
	assert.Equal(t, "120.00", history[0].Amount.StringFixed(2))
}
