package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

// PostgresCompRepository implements auctions.CompRepository using pgx
type PostgresCompRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompRepository creates a new PostgreSQL comp repository
func NewPostgresCompRepository(pool *pgxpool.Pool) *PostgresCompRepository {
	return &PostgresCompRepository{pool: pool}
}

// ReplaceComps deletes the item's comps and inserts the new set inside the
// transaction carried by ctx.
func (r *PostgresCompRepository) ReplaceComps(ctx context.Context, itemID uuid.UUID, comps []*auctions.Comp) error {
	tx, ok := pkgdb.TxFromContext(ctx)
	if !ok {
		return fmt.Errorf("replace comps requires a transaction")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comps WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to delete comps: %w", err)
	}
	if len(comps) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range comps {
		batch.Queue(`
			INSERT INTO comps (id, item_id, title, source, sold_price, sold_date, url, created_at)
			VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`,
			c.ID, itemID, c.Title, c.Source, c.SoldPrice.String(), c.SoldDate, c.URL, c.CreatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert comps: %w", err)
	}
	return nil
}

// ListCompsByItem returns the item's comps, newest first
func (r *PostgresCompRepository) ListCompsByItem(ctx context.Context, itemID uuid.UUID) ([]*auctions.Comp, error) {
	query := `
		SELECT id, item_id, title, source, sold_price::text, sold_date, url, created_at
		FROM comps
		WHERE item_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, itemID)
}

// ListCompsByAuction groups the comps of the auction's items by item id
func (r *PostgresCompRepository) ListCompsByAuction(ctx context.Context, auctionID uuid.UUID) (map[uuid.UUID][]*auctions.Comp, error) {
	query := `
		SELECT c.id, c.item_id, c.title, c.source, c.sold_price::text, c.sold_date, c.url, c.created_at
		FROM comps c
		JOIN items i ON i.id = c.item_id
		WHERE i.auction_id = $1
		ORDER BY c.created_at DESC
	`
	comps, err := r.list(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]*auctions.Comp)
	for _, c := range comps {
		out[c.ItemID] = append(out[c.ItemID], c)
	}
	return out, nil
}

func (r *PostgresCompRepository) list(ctx context.Context, query string, arg any) ([]*auctions.Comp, error) {
	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query comps: %w", err)
	}
	defer rows.Close()

	var out []*auctions.Comp
	for rows.Next() {
		var (
			c     auctions.Comp
			price string
		)
		if err := rows.Scan(&c.ID, &c.ItemID, &c.Title, &c.Source, &price, &c.SoldDate, &c.URL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comp: %w", err)
		}
		if c.SoldPrice, err = parseDecimal(price); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
