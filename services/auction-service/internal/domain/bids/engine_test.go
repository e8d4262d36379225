package bids_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/memory"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// MockMetrics is a mock implementation of Metrics for testing
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) BidAdmitted(kind bids.Kind, demo bool) { m.Called(kind, demo) }
func (m *MockMetrics) BidRejected(reason string)             { m.Called(reason) }
func (m *MockMetrics) AdmissionDuration(d time.Duration)     { m.Called(d) }
func (m *MockMetrics) StorageRetried()                       { m.Called() }

// flakyTxManager fails the first n transactions before delegating
type flakyTxManager struct {
	inner    database.TransactionManager
	failures atomic.Int32
}

func (f *flakyTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.failures.Add(-1) >= 0 {
		return errors.New("connection reset by peer")
	}
	return f.inner.WithinTx(ctx, fn)
}

type fixture struct {
	store     *memory.Store
	clock     *clock.Manual
	lifecycle *auctions.Service
	engine    *bids.Engine
	ledger    *bids.Ledger
	seller    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, nil, nil)
}

func newFixtureWith(t *testing.T, wrap func(database.TransactionManager) database.TransactionManager, metrics bids.Metrics) *fixture {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewManual(t0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var tm database.TransactionManager = memory.NewTransactionManager(store, 2*time.Second)
	lifecycle := auctions.NewService(tm, store, store, store, store, nil, clk, logger)
	if wrap != nil {
		tm = wrap(tm)
	}
	ledger := bids.NewLedger(store)
	engine := bids.NewEngine(tm, store, store, ledger, store, store, clk, metrics, logger)
	return &fixture{store: store, clock: clk, lifecycle: lifecycle, engine: engine, ledger: ledger, seller: uuid.New()}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ptr[T any](v T) *T { return &v }

type seedOptions struct {
	demo     bool
	settings auctions.ItemSettings
	schedule auctions.AuctionSettings
	publish  bool
}

// seed creates an auction with one listed item plus an unlisted one and
// returns the auction and both items
func (f *fixture) seed(t *testing.T, opts seedOptions) (*auctions.Auction, *auctions.Item, *auctions.Item) {
	t.Helper()
	ctx := context.Background()
	a, err := f.lifecycle.CreateAuction(ctx, f.seller, auctions.CreateAuctionCommand{Name: "Estate", IsDemo: opts.demo})
	require.NoError(t, err)
	listed, err := f.lifecycle.CreateItem(ctx, f.seller, auctions.CreateItemCommand{AuctionID: a.ID, Title: "Clock"})
	require.NoError(t, err)
	unlisted, err := f.lifecycle.CreateItem(ctx, f.seller, auctions.CreateItemCommand{AuctionID: a.ID, Title: "Rug"})
	require.NoError(t, err)

	settings := opts.settings
	settings.IsListed = ptr(true)
	listed, err = f.lifecycle.UpdateItemAuctionSettings(ctx, f.seller, listed.ID, settings)
	require.NoError(t, err)
	if opts.schedule != (auctions.AuctionSettings{}) {
		_, err = f.lifecycle.UpdateAuctionSettings(ctx, f.seller, a.ID, opts.schedule)
		require.NoError(t, err)
	}
	if opts.publish {
		a, err = f.lifecycle.Publish(ctx, f.seller, a.ID)
		require.NoError(t, err)
	}
	return a, listed, unlisted
}

func (f *fixture) bid(itemID uuid.UUID, amount string) (*bids.Bid, error) {
	return f.engine.PlaceBid(context.Background(), bids.PlaceBidCommand{
		ItemID:      itemID,
		BidderEmail: "Bidder@Example.com",
		BidderName:  "Pat",
		Amount:      dec(amount),
	})
}

func TestEngine_PlaceBid_MinimumAcceptable(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		inc     string
		prior   []string
		amount  string
		wantErr error
		wantMin string
	}{
		{name: "equal to starting bid", start: "50", amount: "50"},
		{name: "one cent below starting bid", start: "50", amount: "49.99", wantErr: bids.ErrBidTooLow, wantMin: "50"},
		{name: "just below increment", start: "50", inc: "5", prior: []string{"100"}, amount: "104.99", wantErr: bids.ErrBidTooLow, wantMin: "105"},
		{name: "exactly the increment", start: "50", inc: "5", prior: []string{"100"}, amount: "105.00"},
		{name: "default increment of one", start: "10", prior: []string{"10"}, amount: "10.99", wantErr: bids.ErrBidTooLow, wantMin: "11"},
		{name: "equal to current", start: "10", prior: []string{"20"}, amount: "20", wantErr: bids.ErrBidTooLow, wantMin: "21"},
		{name: "zero", start: "10", amount: "0", wantErr: bids.ErrInvalidBidAmount},
		{name: "fractional cents", start: "10", amount: "10.001", wantErr: bids.ErrInvalidBidAmount},
		{name: "largest storable amount", start: "10", amount: "9999999999.99"},
		{name: "above storable range", start: "10", amount: "10000000000", wantErr: bids.ErrInvalidBidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			settings := auctions.ItemSettings{StartingBid: decp(tt.start)}
			if tt.inc != "" {
				settings.MinIncrement = decp(tt.inc)
			}
			_, item, _ := f.seed(t, seedOptions{settings: settings, publish: true})
			for _, p := range tt.prior {
				_, err := f.bid(item.ID, p)
				require.NoError(t, err)
			}

			bid, err := f.bid(item.ID, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, bid)
				if tt.wantMin != "" {
					var tooLow *bids.BidTooLowError
					require.ErrorAs(t, err, &tooLow)
					assert.True(t, tooLow.Minimum.Equal(dec(tt.wantMin)), "minimum %s", tooLow.Minimum)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, bid.Amount.Equal(dec(tt.amount)))
			assert.Equal(t, int64(len(tt.prior)+1), bid.Seq)
			assert.Equal(t, "bidder@example.com", bid.BidderEmail)
			assert.Equal(t, t0, bid.CreatedAt)
		})
	}
}

func TestEngine_PlaceBid_NotActive(t *testing.T) {
	start := t0.Add(time.Hour)
	end := t0.Add(2 * time.Hour)

	tests := []struct {
		name    string
		opts    seedOptions
		act     func(t *testing.T, f *fixture, a *auctions.Auction, listed, unlisted *auctions.Item) error
		wantErr error
	}{
		{
			name: "draft auction",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}},
			act: func(_ *testing.T, f *fixture, _ *auctions.Auction, listed, _ *auctions.Item) error {
				_, err := f.bid(listed.ID, "10")
				return err
			},
			wantErr: bids.ErrAuctionNotActive,
		},
		{
			name: "before start time",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, schedule: auctions.AuctionSettings{StartTime: &start, EndTime: &end}, publish: true},
			act: func(_ *testing.T, f *fixture, _ *auctions.Auction, listed, _ *auctions.Item) error {
				_, err := f.bid(listed.ID, "10")
				return err
			},
			wantErr: bids.ErrAuctionNotActive,
		},
		{
			name: "after end time without close",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, schedule: auctions.AuctionSettings{EndTime: &end}, publish: true},
			act: func(_ *testing.T, f *fixture, _ *auctions.Auction, listed, _ *auctions.Item) error {
				f.clock.Set(end.Add(time.Millisecond))
				_, err := f.bid(listed.ID, "10")
				return err
			},
			wantErr: bids.ErrAuctionNotActive,
		},
		{
			name: "after close",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true},
			act: func(t *testing.T, f *fixture, a *auctions.Auction, listed, _ *auctions.Item) error {
				_, err := f.bid(listed.ID, "10")
				require.NoError(t, err)
				_, err = f.lifecycle.Close(context.Background(), f.seller, a.ID)
				require.NoError(t, err)
				_, err = f.bid(listed.ID, "500")
				return err
			},
			wantErr: bids.ErrAuctionNotActive,
		},
		{
			name: "unlisted item",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true},
			act: func(_ *testing.T, f *fixture, _ *auctions.Auction, _, unlisted *auctions.Item) error {
				_, err := f.bid(unlisted.ID, "10")
				return err
			},
			wantErr: bids.ErrItemNotListed,
		},
		{
			name: "unknown item",
			opts: seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true},
			act: func(_ *testing.T, f *fixture, _ *auctions.Auction, _, _ *auctions.Item) error {
				_, err := f.bid(uuid.New(), "10")
				return err
			},
			wantErr: auctions.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a, listed, unlisted := f.seed(t, tt.opts)
			assert.ErrorIs(t, tt.act(t, f, a, listed, unlisted), tt.wantErr)
		})
	}
}

func TestEngine_PlaceBid_PostCloseLedgerIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})
	for _, amount := range []string{"10", "12", "20"} {
		_, err := f.bid(item.ID, amount)
		require.NoError(t, err)
	}
	_, err := f.lifecycle.Close(ctx, f.seller, a.ID)
	require.NoError(t, err)

	for _, amount := range []string{"21", "1000"} {
		_, err := f.bid(item.ID, amount)
		assert.ErrorIs(t, err, bids.ErrAuctionNotActive)
	}

	highest, err := f.ledger.Highest(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, highest.Amount.Equal(dec("20")))
	all, err := f.ledger.All(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEngine_PlaceBid_ConcurrentBidsAreSerialized(t *testing.T) {
	const n = 50
	f := newFixture(t)
	ctx := context.Background()
	_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("100")}, publish: true})
	_, err := f.bid(item.ID, "100")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			_, err := f.engine.PlaceBid(ctx, bids.PlaceBidCommand{
				ItemID:      item.ID,
				BidderEmail: fmt.Sprintf("bidder%d@example.com", amount),
				BidderName:  "Bidder",
				Amount:      decimal.NewFromInt(int64(100 + amount)),
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, bids.ErrBidTooLow, "only stale bids may be rejected")
	}

	ledger, err := f.ledger.All(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, ledger, admitted+1)

	highest, err := f.ledger.Highest(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, highest.Amount.Equal(decimal.NewFromInt(100+n)), "highest is %s", highest.Amount)

	// ledger is most recent first: amounts strictly decrease and seq is contiguous
	for i := 1; i < len(ledger); i++ {
		assert.True(t, ledger[i-1].Amount.GreaterThan(ledger[i].Amount), "ledger not monotonic at %d", i)
		assert.Equal(t, ledger[i-1].Seq-1, ledger[i].Seq)
	}
}

func TestEngine_PlaceBid_ConcurrentItemsDoNotBlockEachOther(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, first, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("1")}, publish: true})
	_, second, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("1")}, publish: true})

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		for _, id := range []uuid.UUID{first.ID, second.ID} {
			wg.Add(1)
			go func(id uuid.UUID, amount int64) {
				defer wg.Done()
				_, _ = f.engine.PlaceBid(ctx, bids.PlaceBidCommand{ItemID: id, BidderEmail: "a@b.c", BidderName: "A", Amount: decimal.NewFromInt(amount)})
			}(id, int64(i))
		}
	}
	wg.Wait()

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		highest, err := f.ledger.Highest(ctx, id)
		require.NoError(t, err)
		assert.True(t, highest.Amount.Equal(decimal.NewFromInt(20)))
	}
}

func TestEngine_PlaceBid_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})
	cmd := bids.PlaceBidCommand{ItemID: item.ID, BidderEmail: "a@example.com", BidderName: "A", Amount: dec("15"), RequestID: "req-1"}

	first, err := f.engine.PlaceBid(ctx, cmd)
	require.NoError(t, err)
	second, err := f.engine.PlaceBid(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	all, err := f.ledger.All(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Len(t, f.store.Events(), 2, "auction.published and one bid.placed")
}

func TestEngine_PlaceBid_EmitsEvent(t *testing.T) {
	f := newFixture(t)
	a, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})

	bid, err := f.bid(item.ID, "12.50")
	require.NoError(t, err)

	evts := f.store.Events()
	last := evts[len(evts)-1]
	assert.Equal(t, events.EventTypeBidPlaced, last.EventType)
	assert.Equal(t, a.ID, last.AggregateID)
	payload, err := events.DecodePayload(last.Payload)
	require.NoError(t, err)
	assert.Equal(t, bid.ID.String(), payload["bid_id"])
	assert.Equal(t, "12.50", payload["amount"])
	assert.NotContains(t, payload, "bidder_email")
}

func TestEngine_PlaceBid_DemoGuesses(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		wantErr error
	}{
		{name: "guesses need not increase", amounts: []string{"90", "75", "82", "75"}},
		{name: "upper bound is inclusive", amounts: []string{"100000"}},
		{name: "above upper bound", amounts: []string{"100000.01"}, wantErr: bids.ErrInvalidGuess},
		{name: "zero guess", amounts: []string{"0"}, wantErr: bids.ErrInvalidBidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, item, _ := f.seed(t, seedOptions{demo: true, publish: true})
			var err error
			for _, amount := range tt.amounts {
				if _, err = f.bid(item.ID, amount); err != nil {
					break
				}
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			all, err := f.ledger.All(context.Background(), item.ID)
			require.NoError(t, err)
			assert.Len(t, all, len(tt.amounts))
		})
	}
}

func TestEngine_PlaceBid_InvalidBidder(t *testing.T) {
	f := newFixture(t)
	_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})

	_, err := f.engine.PlaceBid(context.Background(), bids.PlaceBidCommand{ItemID: item.ID, BidderEmail: "nobody", BidderName: "N", Amount: dec("10")})
	assert.ErrorIs(t, err, bids.ErrInvalidBidder)

	_, err = f.engine.PlaceBid(context.Background(), bids.PlaceBidCommand{ItemID: item.ID, BidderEmail: "a@b.c", BidderName: " ", Amount: dec("10")})
	assert.ErrorIs(t, err, bids.ErrInvalidBidder)
}

func TestEngine_Retry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int32
		wantErr   error
		wantBids  int
		wantRetry bool
	}{
		{name: "first attempt succeeds", failures: 0, wantBids: 1},
		{name: "retried once then succeeds", failures: 1, wantBids: 1, wantRetry: true},
		{name: "second failure is transient", failures: 2, wantErr: bids.ErrTransientStorage, wantRetry: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &MockMetrics{}
			metrics.On("AdmissionDuration", mock.Anything).Return()
			metrics.On("BidAdmitted", bids.KindBid, false).Return().Maybe()
			metrics.On("BidRejected", "transient").Return().Maybe()
			metrics.On("StorageRetried").Return().Maybe()

			var flaky *flakyTxManager
			f := newFixtureWith(t, func(tm database.TransactionManager) database.TransactionManager {
				flaky = &flakyTxManager{inner: tm}
				return flaky
			}, metrics)
			_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})
			flaky.failures.Store(tt.failures)

			_, err := f.bid(item.ID, "10")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			all, err := f.ledger.All(context.Background(), item.ID)
			require.NoError(t, err)
			assert.Len(t, all, tt.wantBids)
			if tt.wantRetry {
				metrics.AssertCalled(t, "StorageRetried")
			} else {
				metrics.AssertNotCalled(t, "StorageRetried")
			}
		})
	}
}

func TestEngine_Retry_DomainErrorsAreNotRetried(t *testing.T) {
	metrics := &MockMetrics{}
	metrics.On("AdmissionDuration", mock.Anything).Return()
	metrics.On("BidRejected", "bid_too_low").Return().Once()

	f := newFixtureWith(t, nil, metrics)
	_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10")}, publish: true})

	_, err := f.bid(item.ID, "9")

	assert.ErrorIs(t, err, bids.ErrBidTooLow)
	metrics.AssertExpectations(t)
	metrics.AssertNotCalled(t, "StorageRetried")
}

func TestEngine_BuyNow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10"), BuyNowPrice: decp("200")}, publish: true})
	_, err := f.bid(item.ID, "20")
	require.NoError(t, err)

	purchase, err := f.engine.BuyNow(ctx, bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "Buyer@Example.com", BuyerName: "Bo", RequestID: "buy-1"})

	require.NoError(t, err)
	assert.Equal(t, bids.KindBuyNow, purchase.Bid.Kind)
	assert.True(t, purchase.Bid.Amount.Equal(dec("200")))
	assert.Equal(t, int64(2), purchase.Bid.Seq)
	assert.Equal(t, purchase.Bid.ID, purchase.Order.BidID)
	assert.Equal(t, bids.OrderTypeBuyNow, purchase.Order.OrderType)
	assert.Equal(t, "buyer@example.com", purchase.Order.BuyerEmail)
	assert.Equal(t, a.ID, purchase.Order.AuctionID)

	stored, err := f.store.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSold)
	assert.Equal(t, t0, *stored.SoldAt)

	evts := f.store.Events()
	require.GreaterOrEqual(t, len(evts), 2)
	assert.Equal(t, events.EventTypeBidPlaced, evts[len(evts)-2].EventType)
	assert.Equal(t, events.EventTypeItemSold, evts[len(evts)-1].EventType)

	// the item is closed for everyone else
	_, err = f.bid(item.ID, "500")
	assert.ErrorIs(t, err, bids.ErrItemSold)
	assert.ErrorIs(t, err, bids.ErrAuctionNotActive)
	_, err = f.engine.BuyNow(ctx, bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "c@example.com", BuyerName: "C"})
	assert.ErrorIs(t, err, bids.ErrItemSold)

	// a retried purchase replays the original
	replayed, err := f.engine.BuyNow(ctx, bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "buyer@example.com", BuyerName: "Bo", RequestID: "buy-1"})
	require.NoError(t, err)
	assert.Equal(t, purchase.Order.ID, replayed.Order.ID)
}

func TestEngine_BuyNow_Unavailable(t *testing.T) {
	tests := []struct {
		name     string
		demo     bool
		settings auctions.ItemSettings
		prior    []string
	}{
		{name: "no buy now price", settings: auctions.ItemSettings{StartingBid: decp("10")}},
		{name: "demo auction", demo: true, settings: auctions.ItemSettings{BuyNowPrice: decp("50")}},
		{name: "bidding passed the price", settings: auctions.ItemSettings{StartingBid: decp("10"), BuyNowPrice: decp("50")}, prior: []string{"50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, item, _ := f.seed(t, seedOptions{demo: tt.demo, settings: tt.settings, publish: true})
			for _, p := range tt.prior {
				_, err := f.bid(item.ID, p)
				require.NoError(t, err)
			}

			_, err := f.engine.BuyNow(context.Background(), bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "b@example.com", BuyerName: "B"})

			assert.ErrorIs(t, err, bids.ErrBuyNowUnavailable)
		})
	}
}

func TestEngine_BuyNow_StillAvailableWhileMinimumAtPrice(t *testing.T) {
	f := newFixture(t)
	_, item, _ := f.seed(t, seedOptions{settings: auctions.ItemSettings{StartingBid: decp("10"), BuyNowPrice: decp("50")}, publish: true})
	_, err := f.bid(item.ID, "49")
	require.NoError(t, err)

	_, err = f.engine.BuyNow(context.Background(), bids.BuyNowCommand{ItemID: item.ID, BuyerEmail: "b@example.com", BuyerName: "B"})

	require.NoError(t, err)
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{bids.ErrItemSold, "item_sold"},
		{bids.ErrItemNotListed, "item_not_listed"},
		{fmt.Errorf("%w: auction is closed", bids.ErrAuctionNotActive), "auction_not_active"},
		{&bids.BidTooLowError{Minimum: dec("5")}, "bid_too_low"},
		{bids.ErrBuyNowUnavailable, "buy_now_unavailable"},
		{bids.ErrInvalidGuess, "invalid_request"},
		{auctions.ErrItemNotFound, "not_found"},
		{fmt.Errorf("%w: %w", bids.ErrTransientStorage, errors.New("boom")), "transient"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, bids.RejectionReason(tt.err))
		})
	}
}
