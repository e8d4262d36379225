package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

const orderColumns = `
	o.id, o.auction_id, o.item_id, o.bid_id, o.buyer_id, o.buyer_email, o.buyer_name, o.amount::text,
	o.order_type, o.created_at`

// PostgresOrderRepository implements bids.OrderRepository using pgx
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// CreateOrder inserts a new order
func (r *PostgresOrderRepository) CreateOrder(ctx context.Context, o *bids.Order) error {
	query := `
		INSERT INTO orders (id, auction_id, item_id, bid_id, buyer_id, buyer_email, buyer_name, amount,
			order_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10)
	`
	_, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		o.ID, o.AuctionID, o.ItemID, o.BidID, o.BuyerID, o.BuyerEmail, o.BuyerName, o.Amount.String(),
		string(o.OrderType), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetOrderByID retrieves an order by its ID
func (r *PostgresOrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*bids.Order, error) {
	order, err := r.getOne(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, bids.ErrOrderNotFound
	}
	return order, nil
}

// GetOrderByBidID returns the order a bid produced, or nil
func (r *PostgresOrderRepository) GetOrderByBidID(ctx context.Context, bidID uuid.UUID) (*bids.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.bid_id = $1`, bidID)
}

// ListOrders returns the seller's matching orders, newest first
func (r *PostgresOrderRepository) ListOrders(ctx context.Context, filter bids.OrderFilter) ([]*bids.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders o
		JOIN auctions a ON a.id = o.auction_id
		WHERE a.seller_id = $1
			AND ($2::uuid IS NULL OR o.auction_id = $2)
			AND ($3 = '' OR o.buyer_email = $3)
		ORDER BY o.created_at DESC`

	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, filter.SellerID, filter.AuctionID, filter.BuyerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var out []*bids.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresOrderRepository) getOne(ctx context.Context, query string, arg any) (*bids.Order, error) {
	o, err := scanOrder(pkgdb.Conn(ctx, r.pool).QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*bids.Order, error) {
	var (
		o         bids.Order
		amount    string
		orderType string
	)
	err := row.Scan(
		&o.ID, &o.AuctionID, &o.ItemID, &o.BidID, &o.BuyerID, &o.BuyerEmail, &o.BuyerName, &amount,
		&orderType, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.OrderType = bids.OrderType(orderType)
	if o.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	return &o, nil
}
