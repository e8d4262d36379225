package bids

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

// OrderService gives sellers access to the orders of their auctions
type OrderService struct {
	orderRepo   OrderRepository
	auctionRepo AuctionRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, auctionRepo AuctionRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, auctionRepo: auctionRepo}
}

// GetOrder returns an order of one of the seller's auctions
func (s *OrderService) GetOrder(ctx context.Context, sellerID, orderID uuid.UUID) (*Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	auction, err := s.auctionRepo.GetAuctionByID(ctx, order.AuctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsOwnedBy(sellerID) {
		return nil, auctions.ErrUnauthorized
	}
	return order, nil
}

// ListOrders returns the seller's orders, optionally narrowed to one auction
// or one buyer email
func (s *OrderService) ListOrders(ctx context.Context, sellerID uuid.UUID, auctionID *uuid.UUID, buyerEmail string) ([]*Order, error) {
	if auctionID != nil {
		auction, err := s.auctionRepo.GetAuctionByID(ctx, *auctionID)
		if err != nil {
			return nil, err
		}
		if !auction.IsOwnedBy(sellerID) {
			return nil, auctions.ErrUnauthorized
		}
	}

	orders, err := s.orderRepo.ListOrders(ctx, OrderFilter{
		SellerID:   sellerID,
		AuctionID:  auctionID,
		BuyerEmail: auth.NormalizeEmail(buyerEmail),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
