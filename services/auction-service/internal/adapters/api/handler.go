// Package api serves the AuctionService connect contract.
package api

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	auctionsv1 "github.com/floroz/estate-gavel/pkg/api/auctions/v1"
	"github.com/floroz/estate-gavel/pkg/api/auctions/v1/auctionsv1connect"
	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
)

// PublicProcedures are served without a seller token
var PublicProcedures = []string{
	auctionsv1connect.AuctionServiceListPublicAuctionsProcedure,
	auctionsv1connect.AuctionServiceGetPublicAuctionProcedure,
	auctionsv1connect.AuctionServicePlaceBidProcedure,
	auctionsv1connect.AuctionServiceBuyNowProcedure,
	auctionsv1connect.AuctionServiceGetItemBidsProcedure,
}

type AuctionServiceHandler struct {
	auctionsv1connect.UnimplementedAuctionServiceHandler
	lifecycle   *auctions.Service
	engine      *bids.Engine
	orders      *bids.OrderService
	projections *projections.Service
	logger      *slog.Logger
}

func NewAuctionServiceHandler(
	lifecycle *auctions.Service,
	engine *bids.Engine,
	orders *bids.OrderService,
	projections *projections.Service,
	logger *slog.Logger,
) *AuctionServiceHandler {
	return &AuctionServiceHandler{
		lifecycle:   lifecycle,
		engine:      engine,
		orders:      orders,
		projections: projections,
		logger:      logger,
	}
}

// sellerID reads the seller set by the auth interceptor
func sellerID(ctx context.Context) (uuid.UUID, error) {
	id, err := auth.SellerID(ctx)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
	}
	return id, nil
}

func (h *AuctionServiceHandler) fail(ctx context.Context, procedure string, err error) error {
	return toConnectError(ctx, h.logger, procedure, err)
}

func (h *AuctionServiceHandler) CreateAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.CreateAuctionRequest],
) (*connect.Response[auctionsv1.CreateAuctionResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	a, err := h.lifecycle.CreateAuction(ctx, seller, auctions.CreateAuctionCommand{
		Name:   req.Msg.Name,
		IsDemo: req.Msg.IsDemo,
	})
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.CreateAuctionResponse{Auction: mapAuctionToProto(a)}), nil
}

func (h *AuctionServiceHandler) GetAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetAuctionRequest],
) (*connect.Response[auctionsv1.GetAuctionResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	a, err := h.lifecycle.GetAuction(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.GetAuctionResponse{Auction: mapAuctionToProto(a)}), nil
}

func (h *AuctionServiceHandler) ListSellerAuctions(
	ctx context.Context,
	req *connect.Request[auctionsv1.ListSellerAuctionsRequest],
) (*connect.Response[auctionsv1.ListSellerAuctionsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := h.lifecycle.ListSellerAuctions(ctx, seller)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.ListSellerAuctionsResponse{Auctions: mapAuctionsToProto(list)}), nil
}

func (h *AuctionServiceHandler) UpdateAuctionSettings(
	ctx context.Context,
	req *connect.Request[auctionsv1.UpdateAuctionSettingsRequest],
) (*connect.Response[auctionsv1.UpdateAuctionSettingsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}
	start, err := parseOptionalTime("start_time", req.Msg.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTime("end_time", req.Msg.EndTime)
	if err != nil {
		return nil, err
	}

	a, err := h.lifecycle.UpdateAuctionSettings(ctx, seller, auctionID, auctions.AuctionSettings{
		StartTime:       start,
		EndTime:         end,
		PickupLocation:  req.Msg.PickupLocation,
		ShippingAllowed: req.Msg.ShippingAllowed,
	})
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.UpdateAuctionSettingsResponse{Auction: mapAuctionToProto(a)}), nil
}

func (h *AuctionServiceHandler) PublishAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.PublishAuctionRequest],
) (*connect.Response[auctionsv1.PublishAuctionResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	a, err := h.lifecycle.Publish(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.PublishAuctionResponse{Auction: mapAuctionToProto(a)}), nil
}

func (h *AuctionServiceHandler) CloseAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.CloseAuctionRequest],
) (*connect.Response[auctionsv1.CloseAuctionResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	a, err := h.lifecycle.Close(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.CloseAuctionResponse{Auction: mapAuctionToProto(a)}), nil
}

func (h *AuctionServiceHandler) DeleteAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.DeleteAuctionRequest],
) (*connect.Response[auctionsv1.DeleteAuctionResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	if err := h.lifecycle.Delete(ctx, seller, auctionID); err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.DeleteAuctionResponse{}), nil
}

func (h *AuctionServiceHandler) CreateItem(
	ctx context.Context,
	req *connect.Request[auctionsv1.CreateItemRequest],
) (*connect.Response[auctionsv1.CreateItemResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	item, err := h.lifecycle.CreateItem(ctx, seller, auctions.CreateItemCommand{
		AuctionID:   auctionID,
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Lot:         lotFromProto(req.Msg.Lot),
	})
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.CreateItemResponse{Item: mapItemToProto(item)}), nil
}

func (h *AuctionServiceHandler) ListItems(
	ctx context.Context,
	req *connect.Request[auctionsv1.ListItemsRequest],
) (*connect.Response[auctionsv1.ListItemsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	items, err := h.lifecycle.ListItems(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.ListItemsResponse{Items: mapItemsToProto(items)}), nil
}

func (h *AuctionServiceHandler) UpdateItemAuctionSettings(
	ctx context.Context,
	req *connect.Request[auctionsv1.UpdateItemAuctionSettingsRequest],
) (*connect.Response[auctionsv1.UpdateItemAuctionSettingsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID("item_id", req.Msg.ItemId)
	if err != nil {
		return nil, err
	}
	settings, err := itemSettingsFromProto(req.Msg.Settings)
	if err != nil {
		return nil, err
	}

	item, err := h.lifecycle.UpdateItemAuctionSettings(ctx, seller, itemID, settings)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.UpdateItemAuctionSettingsResponse{Item: mapItemToProto(item)}), nil
}

func (h *AuctionServiceHandler) BatchUpdateItemAuctionSettings(
	ctx context.Context,
	req *connect.Request[auctionsv1.BatchUpdateItemAuctionSettingsRequest],
) (*connect.Response[auctionsv1.BatchUpdateItemAuctionSettingsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.Msg.ItemIds) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("item_ids are required"))
	}
	itemIDs := make([]uuid.UUID, len(req.Msg.ItemIds))
	for i, raw := range req.Msg.ItemIds {
		if itemIDs[i], err = parseID("item_ids", raw); err != nil {
			return nil, err
		}
	}
	settings, err := itemSettingsFromProto(req.Msg.Settings)
	if err != nil {
		return nil, err
	}

	items, err := h.lifecycle.BatchUpdateItemAuctionSettings(ctx, seller, itemIDs, settings)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.BatchUpdateItemAuctionSettingsResponse{Items: mapItemsToProto(items)}), nil
}

func (h *AuctionServiceHandler) RecordComps(
	ctx context.Context,
	req *connect.Request[auctionsv1.RecordCompsRequest],
) (*connect.Response[auctionsv1.RecordCompsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID("item_id", req.Msg.ItemId)
	if err != nil {
		return nil, err
	}
	comps, err := compsFromProto(req.Msg.Comps)
	if err != nil {
		return nil, err
	}

	stored, err := h.lifecycle.RecordComps(ctx, seller, itemID, comps)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	res := &auctionsv1.RecordCompsResponse{Comps: make([]*auctionsv1.Comp, len(stored))}
	for i, c := range stored {
		res.Comps[i] = mapCompToProto(c)
	}
	return connect.NewResponse(res), nil
}

func (h *AuctionServiceHandler) GetAuctionBids(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetAuctionBidsRequest],
) (*connect.Response[auctionsv1.GetAuctionBidsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	view, err := h.projections.AuctionBids(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	res := &auctionsv1.GetAuctionBidsResponse{
		Auction: mapAuctionToProto(view.Auction),
		Items:   make([]*auctionsv1.ItemBids, len(view.Items)),
	}
	for i, ib := range view.Items {
		res.Items[i] = mapItemBidsToProto(ib)
	}
	return connect.NewResponse(res), nil
}

func (h *AuctionServiceHandler) GetDemoResults(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetDemoResultsRequest],
) (*connect.Response[auctionsv1.GetDemoResultsResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	results, err := h.projections.DemoResults(ctx, seller, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(mapDemoResultsToProto(results)), nil
}

func (h *AuctionServiceHandler) ListOrders(
	ctx context.Context,
	req *connect.Request[auctionsv1.ListOrdersRequest],
) (*connect.Response[auctionsv1.ListOrdersResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	var auctionID *uuid.UUID
	if req.Msg.AuctionId != "" {
		id, err := parseID("auction_id", req.Msg.AuctionId)
		if err != nil {
			return nil, err
		}
		auctionID = &id
	}

	orders, err := h.orders.ListOrders(ctx, seller, auctionID, req.Msg.BuyerEmail)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	res := &auctionsv1.ListOrdersResponse{Orders: make([]*auctionsv1.Order, len(orders))}
	for i, o := range orders {
		res.Orders[i] = mapOrderToProto(o)
	}
	return connect.NewResponse(res), nil
}

func (h *AuctionServiceHandler) GetOrder(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetOrderRequest],
) (*connect.Response[auctionsv1.GetOrderResponse], error) {
	seller, err := sellerID(ctx)
	if err != nil {
		return nil, err
	}
	orderID, err := parseID("order_id", req.Msg.OrderId)
	if err != nil {
		return nil, err
	}

	order, err := h.orders.GetOrder(ctx, seller, orderID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.GetOrderResponse{Order: mapOrderToProto(order)}), nil
}

func (h *AuctionServiceHandler) ListPublicAuctions(
	ctx context.Context,
	req *connect.Request[auctionsv1.ListPublicAuctionsRequest],
) (*connect.Response[auctionsv1.ListPublicAuctionsResponse], error) {
	list, err := h.lifecycle.ListPublicAuctions(ctx)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.ListPublicAuctionsResponse{Auctions: mapAuctionsToProto(list)}), nil
}

func (h *AuctionServiceHandler) GetPublicAuction(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetPublicAuctionRequest],
) (*connect.Response[auctionsv1.GetPublicAuctionResponse], error) {
	auctionID, err := parseID("auction_id", req.Msg.AuctionId)
	if err != nil {
		return nil, err
	}

	view, err := h.projections.PublicAuction(ctx, auctionID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.GetPublicAuctionResponse{Auction: mapPublicAuctionToProto(view)}), nil
}

func (h *AuctionServiceHandler) PlaceBid(
	ctx context.Context,
	req *connect.Request[auctionsv1.PlaceBidRequest],
) (*connect.Response[auctionsv1.PlaceBidResponse], error) {
	itemID, err := parseID("item_id", req.Msg.ItemId)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, err
	}

	bid, err := h.engine.PlaceBid(ctx, bids.PlaceBidCommand{
		ItemID:      itemID,
		BidderEmail: req.Msg.BidderEmail,
		BidderName:  req.Msg.BidderName,
		Amount:      amount,
		RequestID:   req.Msg.RequestId,
	})
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.PlaceBidResponse{
		Bid: mapPublicBidToProto(projections.ToPublicBid(bid)),
	}), nil
}

func (h *AuctionServiceHandler) BuyNow(
	ctx context.Context,
	req *connect.Request[auctionsv1.BuyNowRequest],
) (*connect.Response[auctionsv1.BuyNowResponse], error) {
	itemID, err := parseID("item_id", req.Msg.ItemId)
	if err != nil {
		return nil, err
	}

	purchase, err := h.engine.BuyNow(ctx, bids.BuyNowCommand{
		ItemID:     itemID,
		BuyerEmail: req.Msg.BuyerEmail,
		BuyerName:  req.Msg.BuyerName,
		RequestID:  req.Msg.RequestId,
	})
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.BuyNowResponse{
		Bid:     mapPublicBidToProto(projections.ToPublicBid(purchase.Bid)),
		OrderId: purchase.Order.ID.String(),
	}), nil
}

func (h *AuctionServiceHandler) GetItemBids(
	ctx context.Context,
	req *connect.Request[auctionsv1.GetItemBidsRequest],
) (*connect.Response[auctionsv1.GetItemBidsResponse], error) {
	itemID, err := parseID("item_id", req.Msg.ItemId)
	if err != nil {
		return nil, err
	}

	history, err := h.projections.ItemBids(ctx, itemID)
	if err != nil {
		return nil, h.fail(ctx, req.Spec().Procedure, err)
	}
	return connect.NewResponse(&auctionsv1.GetItemBidsResponse{Bids: mapPublicBidsToProto(history)}), nil
}
