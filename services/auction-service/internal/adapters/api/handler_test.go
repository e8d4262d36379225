package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auctionsv1 "github.com/floroz/estate-gavel/pkg/api/auctions/v1"
	"github.com/floroz/estate-gavel/pkg/api/auctions/v1/auctionsv1connect"
	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/rpc"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/api"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/memory"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
)

type testApp struct {
	client auctionsv1connect.AuctionServiceClient
	signer *auth.Signer
	clock  *clock.Manual
}

// setupApp wires the handler over the in-memory store behind a test server
func setupApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.NewStore()
	tm := memory.NewTransactionManager(store, 2*time.Second)
	clk := clock.NewManual(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lifecycle := auctions.NewService(tm, store, store, store, store, nil, clk, logger)
	engine := bids.NewEngine(tm, store, store, bids.NewLedger(store), store, store, clk, nil, logger)
	orders := bids.NewOrderService(store, store)
	views := projections.NewService(store, store, store, store, nil, clk, logger)

	signer, err := auth.NewSigner([]byte("test-secret-that-is-at-least-32-bytes!"), "authenticated", "")
	require.NoError(t, err)

	mux := http.NewServeMux()
	api.Mount(mux, api.NewAuctionServiceHandler(lifecycle, engine, orders, views, logger), signer)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testApp{
		client: auctionsv1connect.NewAuctionServiceClient(server.Client(), server.URL, rpc.WithJSON()),
		signer: signer,
		clock:  clk,
	}
}

func authed[T any](t *testing.T, app *testApp, seller uuid.UUID, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := app.signer.IssueToken(seller, "seller@example.com", time.Hour)
	require.NoError(t, err)
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func ptr[T any](v T) *T { return &v }

// publishedItem creates a published auction with one listed item priced by settings
func publishedItem(t *testing.T, app *testApp, seller uuid.UUID, settings *auctionsv1.ItemAuctionSettings) (string, string) {
	t.Helper()
	ctx := context.Background()
	created, err := app.client.CreateAuction(ctx, authed(t, app, seller, &auctionsv1.CreateAuctionRequest{Name: "Estate"}))
	require.NoError(t, err)
	auctionID := created.Msg.Auction.Id

	item, err := app.client.CreateItem(ctx, authed(t, app, seller, &auctionsv1.CreateItemRequest{
		AuctionId: auctionID, Title: "Clock", Lot: ptr(int32(1)),
	}))
	require.NoError(t, err)
	itemID := item.Msg.Item.Id

	settings.IsListed = ptr(true)
	_, err = app.client.UpdateItemAuctionSettings(ctx, authed(t, app, seller, &auctionsv1.UpdateItemAuctionSettingsRequest{
		ItemId: itemID, Settings: settings,
	}))
	require.NoError(t, err)

	published, err := app.client.PublishAuction(ctx, authed(t, app, seller, &auctionsv1.PublishAuctionRequest{AuctionId: auctionID}))
	require.NoError(t, err)
	require.Equal(t, "published", published.Msg.Auction.Status)
	return auctionID, itemID
}

func TestAuctionService_RequiresSellerToken(t *testing.T) {
	app := setupApp(t)

	_, err := app.client.CreateAuction(context.Background(), connect.NewRequest(&auctionsv1.CreateAuctionRequest{Name: "x"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	// Public procedures need no token.
	res, err := app.client.ListPublicAuctions(context.Background(), connect.NewRequest(&auctionsv1.ListPublicAuctionsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, res.Msg.Auctions)
}

func TestAuctionService_PublishValidation(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	seller := uuid.New()

	created, err := app.client.CreateAuction(ctx, authed(t, app, seller, &auctionsv1.CreateAuctionRequest{Name: "Empty"}))
	require.NoError(t, err)

	_, err = app.client.PublishAuction(ctx, authed(t, app, seller, &auctionsv1.PublishAuctionRequest{AuctionId: created.Msg.Auction.Id}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = app.client.CloseAuction(ctx, authed(t, app, seller, &auctionsv1.CloseAuctionRequest{AuctionId: created.Msg.Auction.Id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = app.client.PublishAuction(ctx, authed(t, app, uuid.New(), &auctionsv1.PublishAuctionRequest{AuctionId: created.Msg.Auction.Id}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = app.client.GetAuction(ctx, authed(t, app, seller, &auctionsv1.GetAuctionRequest{AuctionId: uuid.NewString()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = app.client.GetAuction(ctx, authed(t, app, seller, &auctionsv1.GetAuctionRequest{AuctionId: "not-a-uuid"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestAuctionService_PlaceBid(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	seller := uuid.New()
	auctionID, itemID := publishedItem(t, app, seller, &auctionsv1.ItemAuctionSettings{
		StartingBid:  ptr("100"),
		MinIncrement: ptr("5"),
	})

	res, err := app.client.PlaceBid(ctx, connect.NewRequest(&auctionsv1.PlaceBidRequest{
		ItemId: itemID, BidderEmail: "pat@example.com", BidderName: "Pat", Amount: "100",
	}))
	require.NoError(t, err)
	assert.Equal(t, "100.00", res.Msg.Bid.Amount)
	assert.Equal(t, "p***@example.com", res.Msg.Bid.MaskedEmail)

	tests := []struct {
		name        string
		amount      string
		wantCode    connect.Code
		wantMinimum string
	}{
		{name: "below increment", amount: "104.99", wantCode: connect.CodeFailedPrecondition, wantMinimum: "105.00"},
		{name: "three decimals", amount: "105.001", wantCode: connect.CodeInvalidArgument},
		{name: "not a number", amount: "lots", wantCode: connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.client.PlaceBid(ctx, connect.NewRequest(&auctionsv1.PlaceBidRequest{
				ItemId: itemID, BidderEmail: "sam@example.com", BidderName: "Sam", Amount: tt.amount,
			}))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, connect.CodeOf(err))
			if tt.wantMinimum != "" {
				var cerr *connect.Error
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, tt.wantMinimum, cerr.Meta().Get(api.MinimumBidHeader))
			}
		})
	}

	public, err := app.client.GetPublicAuction(ctx, connect.NewRequest(&auctionsv1.GetPublicAuctionRequest{AuctionId: auctionID}))
	require.NoError(t, err)
	require.Len(t, public.Msg.Auction.Items, 1)
	item := public.Msg.Auction.Items[0]
	assert.Equal(t, "100.00", item.CurrentBid)
	assert.Equal(t, "105.00", item.MinNextBid)
	assert.Equal(t, int32(1), item.BidCount)

	history, err := app.client.GetItemBids(ctx, connect.NewRequest(&auctionsv1.GetItemBidsRequest{ItemId: itemID}))
	require.NoError(t, err)
	require.Len(t, history.Msg.Bids, 1)
	assert.Equal(t, "Pat", history.Msg.Bids[0].BidderName)

	_, err = app.client.CloseAuction(ctx, authed(t, app, seller, &auctionsv1.CloseAuctionRequest{AuctionId: auctionID}))
	require.NoError(t, err)

	_, err = app.client.PlaceBid(ctx, connect.NewRequest(&auctionsv1.PlaceBidRequest{
		ItemId: itemID, BidderEmail: "sam@example.com", BidderName: "Sam", Amount: "500",
	}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	tracking, err := app.client.GetAuctionBids(ctx, authed(t, app, seller, &auctionsv1.GetAuctionBidsRequest{AuctionId: auctionID}))
	require.NoError(t, err)
	require.Len(t, tracking.Msg.Items, 1)
	require.NotNil(t, tracking.Msg.Items[0].Winner)
	assert.Equal(t, "pat@example.com", tracking.Msg.Items[0].Winner.BidderEmail)
	assert.Equal(t, int32(1), tracking.Msg.Items[0].BidCount)
}

func TestAuctionService_BuyNowAndOrders(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	seller := uuid.New()
	auctionID, itemID := publishedItem(t, app, seller, &auctionsv1.ItemAuctionSettings{
		StartingBid: ptr("10"),
		BuyNowPrice: ptr("75"),
	})

	res, err := app.client.BuyNow(ctx, connect.NewRequest(&auctionsv1.BuyNowRequest{
		ItemId: itemID, BuyerEmail: "Buyer@Example.com", BuyerName: "Jo", RequestId: "req-1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "75.00", res.Msg.Bid.Amount)
	assert.Equal(t, "buy_now", res.Msg.Bid.Kind)

	// A retried request returns the same order.
	again, err := app.client.BuyNow(ctx, connect.NewRequest(&auctionsv1.BuyNowRequest{
		ItemId: itemID, BuyerEmail: "Buyer@Example.com", BuyerName: "Jo", RequestId: "req-1",
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Msg.OrderId, again.Msg.OrderId)

	_, err = app.client.BuyNow(ctx, connect.NewRequest(&auctionsv1.BuyNowRequest{
		ItemId: itemID, BuyerEmail: "late@example.com", BuyerName: "Late",
	}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	orders, err := app.client.ListOrders(ctx, authed(t, app, seller, &auctionsv1.ListOrdersRequest{AuctionId: auctionID}))
	require.NoError(t, err)
	require.Len(t, orders.Msg.Orders, 1)
	assert.Equal(t, "buyer@example.com", orders.Msg.Orders[0].BuyerEmail)

	order, err := app.client.GetOrder(ctx, authed(t, app, seller, &auctionsv1.GetOrderRequest{OrderId: res.Msg.OrderId}))
	require.NoError(t, err)
	assert.Equal(t, "75.00", order.Msg.Order.Amount)

	_, err = app.client.GetOrder(ctx, authed(t, app, uuid.New(), &auctionsv1.GetOrderRequest{OrderId: res.Msg.OrderId}))
	assert.Error(t, err)
}

func TestAuctionService_DemoResults(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	seller := uuid.New()

	created, err := app.client.CreateAuction(ctx, authed(t, app, seller, &auctionsv1.CreateAuctionRequest{Name: "Guess", IsDemo: true}))
	require.NoError(t, err)
	auctionID := created.Msg.Auction.Id
	item, err := app.client.CreateItem(ctx, authed(t, app, seller, &auctionsv1.CreateItemRequest{AuctionId: auctionID, Title: "Jar"}))
	require.NoError(t, err)
	itemID := item.Msg.Item.Id

	_, err = app.client.RecordComps(ctx, authed(t, app, seller, &auctionsv1.RecordCompsRequest{
		ItemId: itemID,
		Comps: []*auctionsv1.CompInput{
			{Title: "a", SoldPrice: "70", SoldDate: "2026-01-10"},
			{Title: "b", SoldPrice: "90"},
		},
	}))
	require.NoError(t, err)
	_, err = app.client.UpdateItemAuctionSettings(ctx, authed(t, app, seller, &auctionsv1.UpdateItemAuctionSettingsRequest{
		ItemId: itemID, Settings: &auctionsv1.ItemAuctionSettings{IsListed: ptr(true)},
	}))
	require.NoError(t, err)
	_, err = app.client.PublishAuction(ctx, authed(t, app, seller, &auctionsv1.PublishAuctionRequest{AuctionId: auctionID}))
	require.NoError(t, err)

	for i, guess := range []string{"75", "90", "82"} {
		_, err := app.client.PlaceBid(ctx, connect.NewRequest(&auctionsv1.PlaceBidRequest{
			ItemId: itemID, BidderEmail: string(rune('a'+i)) + "@example.com", BidderName: "G", Amount: guess,
		}))
		require.NoError(t, err)
	}

	_, err = app.client.GetDemoResults(ctx, authed(t, app, seller, &auctionsv1.GetDemoResultsRequest{AuctionId: auctionID}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = app.client.CloseAuction(ctx, authed(t, app, seller, &auctionsv1.CloseAuctionRequest{AuctionId: auctionID}))
	require.NoError(t, err)

	results, err := app.client.GetDemoResults(ctx, authed(t, app, seller, &auctionsv1.GetDemoResultsRequest{AuctionId: auctionID}))
	require.NoError(t, err)
	require.Len(t, results.Msg.Items, 1)
	r := results.Msg.Items[0]
	assert.Equal(t, "80.00", r.AvgCompPrice)
	assert.Equal(t, int32(2), r.CompCount)
	got := make([]string, len(r.Guesses))
	for i, g := range r.Guesses {
		got[i] = g.Bid.Amount + "/" + g.Difference
	}
	assert.Equal(t, []string{"82.00/2.00", "75.00/5.00", "90.00/10.00"}, got)
	require.NotNil(t, r.Winner)
	assert.Equal(t, "82.00", r.Winner.Bid.Amount)
}
