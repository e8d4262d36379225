// Package auctionsv1connect wires the auctions.v1.AuctionService contract to
// connect handlers and clients. It is maintained by hand in the layout of
// connect-go output; there is no .proto source and nothing regenerates it.
// Messages travel as JSON through rpc.WithJSON.
package auctionsv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/floroz/estate-gavel/pkg/api/auctions/v1"
)

// AuctionServiceName is the fully-qualified name of the AuctionService service.
const AuctionServiceName = "auctions.v1.AuctionService"

// Fully-qualified procedure names, usable as the path of a request.
const (
	AuctionServiceCreateAuctionProcedure                  = "/auctions.v1.AuctionService/CreateAuction"
	AuctionServiceGetAuctionProcedure                     = "/auctions.v1.AuctionService/GetAuction"
	AuctionServiceListSellerAuctionsProcedure             = "/auctions.v1.AuctionService/ListSellerAuctions"
	AuctionServiceUpdateAuctionSettingsProcedure          = "/auctions.v1.AuctionService/UpdateAuctionSettings"
	AuctionServicePublishAuctionProcedure                 = "/auctions.v1.AuctionService/PublishAuction"
	AuctionServiceCloseAuctionProcedure                   = "/auctions.v1.AuctionService/CloseAuction"
	AuctionServiceDeleteAuctionProcedure                  = "/auctions.v1.AuctionService/DeleteAuction"
	AuctionServiceCreateItemProcedure                     = "/auctions.v1.AuctionService/CreateItem"
	AuctionServiceListItemsProcedure                      = "/auctions.v1.AuctionService/ListItems"
	AuctionServiceUpdateItemAuctionSettingsProcedure      = "/auctions.v1.AuctionService/UpdateItemAuctionSettings"
	AuctionServiceBatchUpdateItemAuctionSettingsProcedure = "/auctions.v1.AuctionService/BatchUpdateItemAuctionSettings"
	AuctionServiceRecordCompsProcedure                    = "/auctions.v1.AuctionService/RecordComps"
	AuctionServiceGetAuctionBidsProcedure                 = "/auctions.v1.AuctionService/GetAuctionBids"
	AuctionServiceGetDemoResultsProcedure                 = "/auctions.v1.AuctionService/GetDemoResults"
	AuctionServiceListOrdersProcedure                     = "/auctions.v1.AuctionService/ListOrders"
	AuctionServiceGetOrderProcedure                       = "/auctions.v1.AuctionService/GetOrder"
	AuctionServiceListPublicAuctionsProcedure             = "/auctions.v1.AuctionService/ListPublicAuctions"
	AuctionServiceGetPublicAuctionProcedure               = "/auctions.v1.AuctionService/GetPublicAuction"
	AuctionServicePlaceBidProcedure                       = "/auctions.v1.AuctionService/PlaceBid"
	AuctionServiceBuyNowProcedure                         = "/auctions.v1.AuctionService/BuyNow"
	AuctionServiceGetItemBidsProcedure                    = "/auctions.v1.AuctionService/GetItemBids"
)

// AuctionServiceClient is a client for the auctions.v1.AuctionService service.
type AuctionServiceClient interface {
	CreateAuction(context.Context, *connect.Request[v1.CreateAuctionRequest]) (*connect.Response[v1.CreateAuctionResponse], error)
	GetAuction(context.Context, *connect.Request[v1.GetAuctionRequest]) (*connect.Response[v1.GetAuctionResponse], error)
	ListSellerAuctions(context.Context, *connect.Request[v1.ListSellerAuctionsRequest]) (*connect.Response[v1.ListSellerAuctionsResponse], error)
	UpdateAuctionSettings(context.Context, *connect.Request[v1.UpdateAuctionSettingsRequest]) (*connect.Response[v1.UpdateAuctionSettingsResponse], error)
	PublishAuction(context.Context, *connect.Request[v1.PublishAuctionRequest]) (*connect.Response[v1.PublishAuctionResponse], error)
	CloseAuction(context.Context, *connect.Request[v1.CloseAuctionRequest]) (*connect.Response[v1.CloseAuctionResponse], error)
	DeleteAuction(context.Context, *connect.Request[v1.DeleteAuctionRequest]) (*connect.Response[v1.DeleteAuctionResponse], error)
	CreateItem(context.Context, *connect.Request[v1.CreateItemRequest]) (*connect.Response[v1.CreateItemResponse], error)
	ListItems(context.Context, *connect.Request[v1.ListItemsRequest]) (*connect.Response[v1.ListItemsResponse], error)
	UpdateItemAuctionSettings(context.Context, *connect.Request[v1.UpdateItemAuctionSettingsRequest]) (*connect.Response[v1.UpdateItemAuctionSettingsResponse], error)
	BatchUpdateItemAuctionSettings(context.Context, *connect.Request[v1.BatchUpdateItemAuctionSettingsRequest]) (*connect.Response[v1.BatchUpdateItemAuctionSettingsResponse], error)
	RecordComps(context.Context, *connect.Request[v1.RecordCompsRequest]) (*connect.Response[v1.RecordCompsResponse], error)
	GetAuctionBids(context.Context, *connect.Request[v1.GetAuctionBidsRequest]) (*connect.Response[v1.GetAuctionBidsResponse], error)
	GetDemoResults(context.Context, *connect.Request[v1.GetDemoResultsRequest]) (*connect.Response[v1.GetDemoResultsResponse], error)
	ListOrders(context.Context, *connect.Request[v1.ListOrdersRequest]) (*connect.Response[v1.ListOrdersResponse], error)
	GetOrder(context.Context, *connect.Request[v1.GetOrderRequest]) (*connect.Response[v1.GetOrderResponse], error)
	ListPublicAuctions(context.Context, *connect.Request[v1.ListPublicAuctionsRequest]) (*connect.Response[v1.ListPublicAuctionsResponse], error)
	GetPublicAuction(context.Context, *connect.Request[v1.GetPublicAuctionRequest]) (*connect.Response[v1.GetPublicAuctionResponse], error)
	PlaceBid(context.Context, *connect.Request[v1.PlaceBidRequest]) (*connect.Response[v1.PlaceBidResponse], error)
	BuyNow(context.Context, *connect.Request[v1.BuyNowRequest]) (*connect.Response[v1.BuyNowResponse], error)
	GetItemBids(context.Context, *connect.Request[v1.GetItemBidsRequest]) (*connect.Response[v1.GetItemBidsResponse], error)
}

// NewAuctionServiceClient constructs a client for the auctions.v1.AuctionService
// service. baseURL is the scheme and host the service is mounted under.
func NewAuctionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuctionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &auctionServiceClient{
		createAuction: connect.NewClient[v1.CreateAuctionRequest, v1.CreateAuctionResponse](
			httpClient,
			baseURL+AuctionServiceCreateAuctionProcedure,
			opts...,
		),
		getAuction: connect.NewClient[v1.GetAuctionRequest, v1.GetAuctionResponse](
			httpClient,
			baseURL+AuctionServiceGetAuctionProcedure,
			opts...,
		),
		listSellerAuctions: connect.NewClient[v1.ListSellerAuctionsRequest, v1.ListSellerAuctionsResponse](
			httpClient,
			baseURL+AuctionServiceListSellerAuctionsProcedure,
			opts...,
		),
		updateAuctionSettings: connect.NewClient[v1.UpdateAuctionSettingsRequest, v1.UpdateAuctionSettingsResponse](
			httpClient,
			baseURL+AuctionServiceUpdateAuctionSettingsProcedure,
			opts...,
		),
		publishAuction: connect.NewClient[v1.PublishAuctionRequest, v1.PublishAuctionResponse](
			httpClient,
			baseURL+AuctionServicePublishAuctionProcedure,
			opts...,
		),
		closeAuction: connect.NewClient[v1.CloseAuctionRequest, v1.CloseAuctionResponse](
			httpClient,
			baseURL+AuctionServiceCloseAuctionProcedure,
			opts...,
		),
		deleteAuction: connect.NewClient[v1.DeleteAuctionRequest, v1.DeleteAuctionResponse](
			httpClient,
			baseURL+AuctionServiceDeleteAuctionProcedure,
			opts...,
		),
		createItem: connect.NewClient[v1.CreateItemRequest, v1.CreateItemResponse](
			httpClient,
			baseURL+AuctionServiceCreateItemProcedure,
			opts...,
		),
		listItems: connect.NewClient[v1.ListItemsRequest, v1.ListItemsResponse](
			httpClient,
			baseURL+AuctionServiceListItemsProcedure,
			opts...,
		),
		updateItemAuctionSettings: connect.NewClient[v1.UpdateItemAuctionSettingsRequest, v1.UpdateItemAuctionSettingsResponse](
			httpClient,
			baseURL+AuctionServiceUpdateItemAuctionSettingsProcedure,
			opts...,
		),
		batchUpdateItemAuctionSettings: connect.NewClient[v1.BatchUpdateItemAuctionSettingsRequest, v1.BatchUpdateItemAuctionSettingsResponse](
			httpClient,
			baseURL+AuctionServiceBatchUpdateItemAuctionSettingsProcedure,
			opts...,
		),
		recordComps: connect.NewClient[v1.RecordCompsRequest, v1.RecordCompsResponse](
			httpClient,
			baseURL+AuctionServiceRecordCompsProcedure,
			opts...,
		),
		getAuctionBids: connect.NewClient[v1.GetAuctionBidsRequest, v1.GetAuctionBidsResponse](
			httpClient,
			baseURL+AuctionServiceGetAuctionBidsProcedure,
			opts...,
		),
		getDemoResults: connect.NewClient[v1.GetDemoResultsRequest, v1.GetDemoResultsResponse](
			httpClient,
			baseURL+AuctionServiceGetDemoResultsProcedure,
			opts...,
		),
		listOrders: connect.NewClient[v1.ListOrdersRequest, v1.ListOrdersResponse](
			httpClient,
			baseURL+AuctionServiceListOrdersProcedure,
			opts...,
		),
		getOrder: connect.NewClient[v1.GetOrderRequest, v1.GetOrderResponse](
			httpClient,
			baseURL+AuctionServiceGetOrderProcedure,
			opts...,
		),
		listPublicAuctions: connect.NewClient[v1.ListPublicAuctionsRequest, v1.ListPublicAuctionsResponse](
			httpClient,
			baseURL+AuctionServiceListPublicAuctionsProcedure,
			opts...,
		),
		getPublicAuction: connect.NewClient[v1.GetPublicAuctionRequest, v1.GetPublicAuctionResponse](
			httpClient,
			baseURL+AuctionServiceGetPublicAuctionProcedure,
			opts...,
		),
		placeBid: connect.NewClient[v1.PlaceBidRequest, v1.PlaceBidResponse](
			httpClient,
			baseURL+AuctionServicePlaceBidProcedure,
			opts...,
		),
		buyNow: connect.NewClient[v1.BuyNowRequest, v1.BuyNowResponse](
			httpClient,
			baseURL+AuctionServiceBuyNowProcedure,
			opts...,
		),
		getItemBids: connect.NewClient[v1.GetItemBidsRequest, v1.GetItemBidsResponse](
			httpClient,
			baseURL+AuctionServiceGetItemBidsProcedure,
			opts...,
		),
	}
}

type auctionServiceClient struct {
	createAuction                  *connect.Client[v1.CreateAuctionRequest, v1.CreateAuctionResponse]
	getAuction                     *connect.Client[v1.GetAuctionRequest, v1.GetAuctionResponse]
	listSellerAuctions             *connect.Client[v1.ListSellerAuctionsRequest, v1.ListSellerAuctionsResponse]
	updateAuctionSettings          *connect.Client[v1.UpdateAuctionSettingsRequest, v1.UpdateAuctionSettingsResponse]
	publishAuction                 *connect.Client[v1.PublishAuctionRequest, v1.PublishAuctionResponse]
	closeAuction                   *connect.Client[v1.CloseAuctionRequest, v1.CloseAuctionResponse]
	deleteAuction                  *connect.Client[v1.DeleteAuctionRequest, v1.DeleteAuctionResponse]
	createItem                     *connect.Client[v1.CreateItemRequest, v1.CreateItemResponse]
	listItems                      *connect.Client[v1.ListItemsRequest, v1.ListItemsResponse]
	updateItemAuctionSettings      *connect.Client[v1.UpdateItemAuctionSettingsRequest, v1.UpdateItemAuctionSettingsResponse]
	batchUpdateItemAuctionSettings *connect.Client[v1.BatchUpdateItemAuctionSettingsRequest, v1.BatchUpdateItemAuctionSettingsResponse]
	recordComps                    *connect.Client[v1.RecordCompsRequest, v1.RecordCompsResponse]
	getAuctionBids                 *connect.Client[v1.GetAuctionBidsRequest, v1.GetAuctionBidsResponse]
	getDemoResults                 *connect.Client[v1.GetDemoResultsRequest, v1.GetDemoResultsResponse]
	listOrders                     *connect.Client[v1.ListOrdersRequest, v1.ListOrdersResponse]
	getOrder                       *connect.Client[v1.GetOrderRequest, v1.GetOrderResponse]
	listPublicAuctions             *connect.Client[v1.ListPublicAuctionsRequest, v1.ListPublicAuctionsResponse]
	getPublicAuction               *connect.Client[v1.GetPublicAuctionRequest, v1.GetPublicAuctionResponse]
	placeBid                       *connect.Client[v1.PlaceBidRequest, v1.PlaceBidResponse]
	buyNow                         *connect.Client[v1.BuyNowRequest, v1.BuyNowResponse]
	getItemBids                    *connect.Client[v1.GetItemBidsRequest, v1.GetItemBidsResponse]
}

func (c *auctionServiceClient) CreateAuction(ctx context.Context, req *connect.Request[v1.CreateAuctionRequest]) (*connect.Response[v1.CreateAuctionResponse], error) {
	return c.createAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetAuction(ctx context.Context, req *connect.Request[v1.GetAuctionRequest]) (*connect.Response[v1.GetAuctionResponse], error) {
	return c.getAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) ListSellerAuctions(ctx context.Context, req *connect.Request[v1.ListSellerAuctionsRequest]) (*connect.Response[v1.ListSellerAuctionsResponse], error) {
	return c.listSellerAuctions.CallUnary(ctx, req)
}

func (c *auctionServiceClient) UpdateAuctionSettings(ctx context.Context, req *connect.Request[v1.UpdateAuctionSettingsRequest]) (*connect.Response[v1.UpdateAuctionSettingsResponse], error) {
	return c.updateAuctionSettings.CallUnary(ctx, req)
}

func (c *auctionServiceClient) PublishAuction(ctx context.Context, req *connect.Request[v1.PublishAuctionRequest]) (*connect.Response[v1.PublishAuctionResponse], error) {
	return c.publishAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) CloseAuction(ctx context.Context, req *connect.Request[v1.CloseAuctionRequest]) (*connect.Response[v1.CloseAuctionResponse], error) {
	return c.closeAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) DeleteAuction(ctx context.Context, req *connect.Request[v1.DeleteAuctionRequest]) (*connect.Response[v1.DeleteAuctionResponse], error) {
	return c.deleteAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) CreateItem(ctx context.Context, req *connect.Request[v1.CreateItemRequest]) (*connect.Response[v1.CreateItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

func (c *auctionServiceClient) ListItems(ctx context.Context, req *connect.Request[v1.ListItemsRequest]) (*connect.Response[v1.ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

func (c *auctionServiceClient) UpdateItemAuctionSettings(ctx context.Context, req *connect.Request[v1.UpdateItemAuctionSettingsRequest]) (*connect.Response[v1.UpdateItemAuctionSettingsResponse], error) {
	return c.updateItemAuctionSettings.CallUnary(ctx, req)
}

func (c *auctionServiceClient) BatchUpdateItemAuctionSettings(ctx context.Context, req *connect.Request[v1.BatchUpdateItemAuctionSettingsRequest]) (*connect.Response[v1.BatchUpdateItemAuctionSettingsResponse], error) {
	return c.batchUpdateItemAuctionSettings.CallUnary(ctx, req)
}

func (c *auctionServiceClient) RecordComps(ctx context.Context, req *connect.Request[v1.RecordCompsRequest]) (*connect.Response[v1.RecordCompsResponse], error) {
	return c.recordComps.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetAuctionBids(ctx context.Context, req *connect.Request[v1.GetAuctionBidsRequest]) (*connect.Response[v1.GetAuctionBidsResponse], error) {
	return c.getAuctionBids.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetDemoResults(ctx context.Context, req *connect.Request[v1.GetDemoResultsRequest]) (*connect.Response[v1.GetDemoResultsResponse], error) {
	return c.getDemoResults.CallUnary(ctx, req)
}

func (c *auctionServiceClient) ListOrders(ctx context.Context, req *connect.Request[v1.ListOrdersRequest]) (*connect.Response[v1.ListOrdersResponse], error) {
	return c.listOrders.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetOrder(ctx context.Context, req *connect.Request[v1.GetOrderRequest]) (*connect.Response[v1.GetOrderResponse], error) {
	return c.getOrder.CallUnary(ctx, req)
}

func (c *auctionServiceClient) ListPublicAuctions(ctx context.Context, req *connect.Request[v1.ListPublicAuctionsRequest]) (*connect.Response[v1.ListPublicAuctionsResponse], error) {
	return c.listPublicAuctions.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetPublicAuction(ctx context.Context, req *connect.Request[v1.GetPublicAuctionRequest]) (*connect.Response[v1.GetPublicAuctionResponse], error) {
	return c.getPublicAuction.CallUnary(ctx, req)
}

func (c *auctionServiceClient) PlaceBid(ctx context.Context, req *connect.Request[v1.PlaceBidRequest]) (*connect.Response[v1.PlaceBidResponse], error) {
	return c.placeBid.CallUnary(ctx, req)
}

func (c *auctionServiceClient) BuyNow(ctx context.Context, req *connect.Request[v1.BuyNowRequest]) (*connect.Response[v1.BuyNowResponse], error) {
	return c.buyNow.CallUnary(ctx, req)
}

func (c *auctionServiceClient) GetItemBids(ctx context.Context, req *connect.Request[v1.GetItemBidsRequest]) (*connect.Response[v1.GetItemBidsResponse], error) {
	return c.getItemBids.CallUnary(ctx, req)
}

// AuctionServiceHandler is implemented by servers of the auctions.v1.AuctionService service.
type AuctionServiceHandler interface {
	CreateAuction(context.Context, *connect.Request[v1.CreateAuctionRequest]) (*connect.Response[v1.CreateAuctionResponse], error)
	GetAuction(context.Context, *connect.Request[v1.GetAuctionRequest]) (*connect.Response[v1.GetAuctionResponse], error)
	ListSellerAuctions(context.Context, *connect.Request[v1.ListSellerAuctionsRequest]) (*connect.Response[v1.ListSellerAuctionsResponse], error)
	UpdateAuctionSettings(context.Context, *connect.Request[v1.UpdateAuctionSettingsRequest]) (*connect.Response[v1.UpdateAuctionSettingsResponse], error)
	PublishAuction(context.Context, *connect.Request[v1.PublishAuctionRequest]) (*connect.Response[v1.PublishAuctionResponse], error)
	CloseAuction(context.Context, *connect.Request[v1.CloseAuctionRequest]) (*connect.Response[v1.CloseAuctionResponse], error)
	DeleteAuction(context.Context, *connect.Request[v1.DeleteAuctionRequest]) (*connect.Response[v1.DeleteAuctionResponse], error)
	CreateItem(context.Context, *connect.Request[v1.CreateItemRequest]) (*connect.Response[v1.CreateItemResponse], error)
	ListItems(context.Context, *connect.Request[v1.ListItemsRequest]) (*connect.Response[v1.ListItemsResponse], error)
	UpdateItemAuctionSettings(context.Context, *connect.Request[v1.UpdateItemAuctionSettingsRequest]) (*connect.Response[v1.UpdateItemAuctionSettingsResponse], error)
	BatchUpdateItemAuctionSettings(context.Context, *connect.Request[v1.BatchUpdateItemAuctionSettingsRequest]) (*connect.Response[v1.BatchUpdateItemAuctionSettingsResponse], error)
	RecordComps(context.Context, *connect.Request[v1.RecordCompsRequest]) (*connect.Response[v1.RecordCompsResponse], error)
	GetAuctionBids(context.Context, *connect.Request[v1.GetAuctionBidsRequest]) (*connect.Response[v1.GetAuctionBidsResponse], error)
	GetDemoResults(context.Context, *connect.Request[v1.GetDemoResultsRequest]) (*connect.Response[v1.GetDemoResultsResponse], error)
	ListOrders(context.Context, *connect.Request[v1.ListOrdersRequest]) (*connect.Response[v1.ListOrdersResponse], error)
	GetOrder(context.Context, *connect.Request[v1.GetOrderRequest]) (*connect.Response[v1.GetOrderResponse], error)
	ListPublicAuctions(context.Context, *connect.Request[v1.ListPublicAuctionsRequest]) (*connect.Response[v1.ListPublicAuctionsResponse], error)
	GetPublicAuction(context.Context, *connect.Request[v1.GetPublicAuctionRequest]) (*connect.Response[v1.GetPublicAuctionResponse], error)
	PlaceBid(context.Context, *connect.Request[v1.PlaceBidRequest]) (*connect.Response[v1.PlaceBidResponse], error)
	BuyNow(context.Context, *connect.Request[v1.BuyNowRequest]) (*connect.Response[v1.BuyNowResponse], error)
	GetItemBids(context.Context, *connect.Request[v1.GetItemBidsRequest]) (*connect.Response[v1.GetItemBidsResponse], error)
}

// NewAuctionServiceHandler builds an HTTP handler serving every procedure of
// svc. It returns the path to mount the handler on.
func NewAuctionServiceHandler(svc AuctionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	createAuctionHandler := connect.NewUnaryHandler(
		AuctionServiceCreateAuctionProcedure,
		svc.CreateAuction,
		opts...,
	)
	getAuctionHandler := connect.NewUnaryHandler(
		AuctionServiceGetAuctionProcedure,
		svc.GetAuction,
		opts...,
	)
	listSellerAuctionsHandler := connect.NewUnaryHandler(
		AuctionServiceListSellerAuctionsProcedure,
		svc.ListSellerAuctions,
		opts...,
	)
	updateAuctionSettingsHandler := connect.NewUnaryHandler(
		AuctionServiceUpdateAuctionSettingsProcedure,
		svc.UpdateAuctionSettings,
		opts...,
	)
	publishAuctionHandler := connect.NewUnaryHandler(
		AuctionServicePublishAuctionProcedure,
		svc.PublishAuction,
		opts...,
	)
	closeAuctionHandler := connect.NewUnaryHandler(
		AuctionServiceCloseAuctionProcedure,
		svc.CloseAuction,
		opts...,
	)
	deleteAuctionHandler := connect.NewUnaryHandler(
		AuctionServiceDeleteAuctionProcedure,
		svc.DeleteAuction,
		opts...,
	)
	createItemHandler := connect.NewUnaryHandler(
		AuctionServiceCreateItemProcedure,
		svc.CreateItem,
		opts...,
	)
	listItemsHandler := connect.NewUnaryHandler(
		AuctionServiceListItemsProcedure,
		svc.ListItems,
		opts...,
	)
	updateItemAuctionSettingsHandler := connect.NewUnaryHandler(
		AuctionServiceUpdateItemAuctionSettingsProcedure,
		svc.UpdateItemAuctionSettings,
		opts...,
	)
	batchUpdateItemAuctionSettingsHandler := connect.NewUnaryHandler(
		AuctionServiceBatchUpdateItemAuctionSettingsProcedure,
		svc.BatchUpdateItemAuctionSettings,
		opts...,
	)
	recordCompsHandler := connect.NewUnaryHandler(
		AuctionServiceRecordCompsProcedure,
		svc.RecordComps,
		opts...,
	)
	getAuctionBidsHandler := connect.NewUnaryHandler(
		AuctionServiceGetAuctionBidsProcedure,
		svc.GetAuctionBids,
		opts...,
	)
	getDemoResultsHandler := connect.NewUnaryHandler(
		AuctionServiceGetDemoResultsProcedure,
		svc.GetDemoResults,
		opts...,
	)
	listOrdersHandler := connect.NewUnaryHandler(
		AuctionServiceListOrdersProcedure,
		svc.ListOrders,
		opts...,
	)
	getOrderHandler := connect.NewUnaryHandler(
		AuctionServiceGetOrderProcedure,
		svc.GetOrder,
		opts...,
	)
	listPublicAuctionsHandler := connect.NewUnaryHandler(
		AuctionServiceListPublicAuctionsProcedure,
		svc.ListPublicAuctions,
		opts...,
	)
	getPublicAuctionHandler := connect.NewUnaryHandler(
		AuctionServiceGetPublicAuctionProcedure,
		svc.GetPublicAuction,
		opts...,
	)
	placeBidHandler := connect.NewUnaryHandler(
		AuctionServicePlaceBidProcedure,
		svc.PlaceBid,
		opts...,
	)
	buyNowHandler := connect.NewUnaryHandler(
		AuctionServiceBuyNowProcedure,
		svc.BuyNow,
		opts...,
	)
	getItemBidsHandler := connect.NewUnaryHandler(
		AuctionServiceGetItemBidsProcedure,
		svc.GetItemBids,
		opts...,
	)
	return "/auctions.v1.AuctionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuctionServiceCreateAuctionProcedure:
			createAuctionHandler.ServeHTTP(w, r)
		case AuctionServiceGetAuctionProcedure:
			getAuctionHandler.ServeHTTP(w, r)
		case AuctionServiceListSellerAuctionsProcedure:
			listSellerAuctionsHandler.ServeHTTP(w, r)
		case AuctionServiceUpdateAuctionSettingsProcedure:
			updateAuctionSettingsHandler.ServeHTTP(w, r)
		case AuctionServicePublishAuctionProcedure:
			publishAuctionHandler.ServeHTTP(w, r)
		case AuctionServiceCloseAuctionProcedure:
			closeAuctionHandler.ServeHTTP(w, r)
		case AuctionServiceDeleteAuctionProcedure:
			deleteAuctionHandler.ServeHTTP(w, r)
		case AuctionServiceCreateItemProcedure:
			createItemHandler.ServeHTTP(w, r)
		case AuctionServiceListItemsProcedure:
			listItemsHandler.ServeHTTP(w, r)
		case AuctionServiceUpdateItemAuctionSettingsProcedure:
			updateItemAuctionSettingsHandler.ServeHTTP(w, r)
		case AuctionServiceBatchUpdateItemAuctionSettingsProcedure:
			batchUpdateItemAuctionSettingsHandler.ServeHTTP(w, r)
		case AuctionServiceRecordCompsProcedure:
			recordCompsHandler.ServeHTTP(w, r)
		case AuctionServiceGetAuctionBidsProcedure:
			getAuctionBidsHandler.ServeHTTP(w, r)
		case AuctionServiceGetDemoResultsProcedure:
			getDemoResultsHandler.ServeHTTP(w, r)
		case AuctionServiceListOrdersProcedure:
			listOrdersHandler.ServeHTTP(w, r)
		case AuctionServiceGetOrderProcedure:
			getOrderHandler.ServeHTTP(w, r)
		case AuctionServiceListPublicAuctionsProcedure:
			listPublicAuctionsHandler.ServeHTTP(w, r)
		case AuctionServiceGetPublicAuctionProcedure:
			getPublicAuctionHandler.ServeHTTP(w, r)
		case AuctionServicePlaceBidProcedure:
			placeBidHandler.ServeHTTP(w, r)
		case AuctionServiceBuyNowProcedure:
			buyNowHandler.ServeHTTP(w, r)
		case AuctionServiceGetItemBidsProcedure:
			getItemBidsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuctionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuctionServiceHandler struct{}

func (UnimplementedAuctionServiceHandler) CreateAuction(context.Context, *connect.Request[v1.CreateAuctionRequest]) (*connect.Response[v1.CreateAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.CreateAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetAuction(context.Context, *connect.Request[v1.GetAuctionRequest]) (*connect.Response[v1.GetAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) ListSellerAuctions(context.Context, *connect.Request[v1.ListSellerAuctionsRequest]) (*connect.Response[v1.ListSellerAuctionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.ListSellerAuctions is not implemented"))
}

func (UnimplementedAuctionServiceHandler) UpdateAuctionSettings(context.Context, *connect.Request[v1.UpdateAuctionSettingsRequest]) (*connect.Response[v1.UpdateAuctionSettingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.UpdateAuctionSettings is not implemented"))
}

func (UnimplementedAuctionServiceHandler) PublishAuction(context.Context, *connect.Request[v1.PublishAuctionRequest]) (*connect.Response[v1.PublishAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.PublishAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) CloseAuction(context.Context, *connect.Request[v1.CloseAuctionRequest]) (*connect.Response[v1.CloseAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.CloseAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) DeleteAuction(context.Context, *connect.Request[v1.DeleteAuctionRequest]) (*connect.Response[v1.DeleteAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.DeleteAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) CreateItem(context.Context, *connect.Request[v1.CreateItemRequest]) (*connect.Response[v1.CreateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.CreateItem is not implemented"))
}

func (UnimplementedAuctionServiceHandler) ListItems(context.Context, *connect.Request[v1.ListItemsRequest]) (*connect.Response[v1.ListItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.ListItems is not implemented"))
}

func (UnimplementedAuctionServiceHandler) UpdateItemAuctionSettings(context.Context, *connect.Request[v1.UpdateItemAuctionSettingsRequest]) (*connect.Response[v1.UpdateItemAuctionSettingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.UpdateItemAuctionSettings is not implemented"))
}

func (UnimplementedAuctionServiceHandler) BatchUpdateItemAuctionSettings(context.Context, *connect.Request[v1.BatchUpdateItemAuctionSettingsRequest]) (*connect.Response[v1.BatchUpdateItemAuctionSettingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.BatchUpdateItemAuctionSettings is not implemented"))
}

func (UnimplementedAuctionServiceHandler) RecordComps(context.Context, *connect.Request[v1.RecordCompsRequest]) (*connect.Response[v1.RecordCompsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.RecordComps is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetAuctionBids(context.Context, *connect.Request[v1.GetAuctionBidsRequest]) (*connect.Response[v1.GetAuctionBidsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetAuctionBids is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetDemoResults(context.Context, *connect.Request[v1.GetDemoResultsRequest]) (*connect.Response[v1.GetDemoResultsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetDemoResults is not implemented"))
}

func (UnimplementedAuctionServiceHandler) ListOrders(context.Context, *connect.Request[v1.ListOrdersRequest]) (*connect.Response[v1.ListOrdersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.ListOrders is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetOrder(context.Context, *connect.Request[v1.GetOrderRequest]) (*connect.Response[v1.GetOrderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetOrder is not implemented"))
}

func (UnimplementedAuctionServiceHandler) ListPublicAuctions(context.Context, *connect.Request[v1.ListPublicAuctionsRequest]) (*connect.Response[v1.ListPublicAuctionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.ListPublicAuctions is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetPublicAuction(context.Context, *connect.Request[v1.GetPublicAuctionRequest]) (*connect.Response[v1.GetPublicAuctionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetPublicAuction is not implemented"))
}

func (UnimplementedAuctionServiceHandler) PlaceBid(context.Context, *connect.Request[v1.PlaceBidRequest]) (*connect.Response[v1.PlaceBidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.PlaceBid is not implemented"))
}

func (UnimplementedAuctionServiceHandler) BuyNow(context.Context, *connect.Request[v1.BuyNowRequest]) (*connect.Response[v1.BuyNowResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.BuyNow is not implemented"))
}

func (UnimplementedAuctionServiceHandler) GetItemBids(context.Context, *connect.Request[v1.GetItemBidsRequest]) (*connect.Response[v1.GetItemBidsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("auctions.v1.AuctionService.GetItemBids is not implemented"))
}
