package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

const itemColumns = `
	id, auction_id, title, description, lot, starting_bid::text, min_increment::text, buy_now_price::text,
	is_listed, is_sold, sold_at, created_at, updated_at`

// PostgresItemRepository implements auctions.ItemRepository using pgx
type PostgresItemRepository struct {
	pool *pgxpool.Pool // Keep pool for non-transactional reads
}

// NewPostgresItemRepository creates a new PostgreSQL item repository
func NewPostgresItemRepository(pool *pgxpool.Pool) *PostgresItemRepository {
	return &PostgresItemRepository{pool: pool}
}

// CreateItem inserts a new item
func (r *PostgresItemRepository) CreateItem(ctx context.Context, item *auctions.Item) error {
	query := `
		INSERT INTO items (id, auction_id, title, description, lot, starting_bid, min_increment, buy_now_price,
			is_listed, is_sold, sold_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9, $10, $11, $12, $13)
	`
	_, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		item.ID, item.AuctionID, item.Title, item.Description, item.Lot,
		nullDecimalArg(item.StartingBid), item.MinIncrement.String(), nullDecimalArg(item.BuyNowPrice),
		item.IsListed, item.IsSold, item.SoldAt, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetItemByID retrieves an item by its ID (non-transactional read)
func (r *PostgresItemRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*auctions.Item, error) {
	return r.getItem(ctx, id, false)
}

// GetItemByIDForUpdate retrieves an item by its ID and locks it for update.
// Concurrent bids on the same item queue here.
func (r *PostgresItemRepository) GetItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*auctions.Item, error) {
	return r.getItem(ctx, id, true)
}

func (r *PostgresItemRepository) getItem(ctx context.Context, id uuid.UUID, forUpdate bool) (*auctions.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	item, err := scanItem(pkgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auctions.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItemsByAuction orders items by lot (unset last) then creation time
func (r *PostgresItemRepository) ListItemsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*auctions.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE auction_id = $1
		ORDER BY lot ASC NULLS LAST, created_at ASC`

	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var out []*auctions.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// UpdateItem writes every mutable column of the item
func (r *PostgresItemRepository) UpdateItem(ctx context.Context, item *auctions.Item) error {
	query := `
		UPDATE items
		SET title = $2, description = $3, lot = $4, starting_bid = $5::numeric, min_increment = $6::numeric,
			buy_now_price = $7::numeric, is_listed = $8, is_sold = $9, sold_at = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		item.ID, item.Title, item.Description, item.Lot,
		nullDecimalArg(item.StartingBid), item.MinIncrement.String(), nullDecimalArg(item.BuyNowPrice),
		item.IsListed, item.IsSold, item.SoldAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return auctions.ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*auctions.Item, error) {
	var (
		item                     auctions.Item
		startingBid, buyNowPrice *string
		minIncrement             string
	)
	err := row.Scan(
		&item.ID, &item.AuctionID, &item.Title, &item.Description, &item.Lot,
		&startingBid, &minIncrement, &buyNowPrice,
		&item.IsListed, &item.IsSold, &item.SoldAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if item.StartingBid, err = parseNullDecimal(startingBid); err != nil {
		return nil, err
	}
	if item.MinIncrement, err = parseDecimal(minIncrement); err != nil {
		return nil, err
	}
	if item.BuyNowPrice, err = parseNullDecimal(buyNowPrice); err != nil {
		return nil, err
	}
	return &item, nil
}
