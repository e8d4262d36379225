package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

const auctionColumns = `
	id, seller_id, name, status::text, is_demo, start_time, end_time, pickup_location,
	shipping_allowed, published_at, closed_at, archived_at, created_at, updated_at`

// PostgresAuctionRepository implements auctions.AuctionRepository using pgx
type PostgresAuctionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuctionRepository creates a new PostgreSQL auction repository
func NewPostgresAuctionRepository(pool *pgxpool.Pool) *PostgresAuctionRepository {
	return &PostgresAuctionRepository{pool: pool}
}

// CreateAuction inserts a new auction
func (r *PostgresAuctionRepository) CreateAuction(ctx context.Context, a *auctions.Auction) error {
	query := `
		INSERT INTO auctions (id, seller_id, name, status, is_demo, start_time, end_time, pickup_location,
			shipping_allowed, published_at, closed_at, archived_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4::auction_status, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		a.ID, a.SellerID, a.Name, string(a.Status), a.IsDemo, a.StartTime, a.EndTime, a.PickupLocation,
		a.ShippingAllowed, a.PublishedAt, a.ClosedAt, a.ArchivedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert auction: %w", err)
	}
	return nil
}

// GetAuctionByID retrieves an auction without locking it
func (r *PostgresAuctionRepository) GetAuctionByID(ctx context.Context, id uuid.UUID) (*auctions.Auction, error) {
	return r.getAuction(ctx, id, "")
}

// GetAuctionByIDForUpdate retrieves an auction and locks it exclusively
func (r *PostgresAuctionRepository) GetAuctionByIDForUpdate(ctx context.Context, id uuid.UUID) (*auctions.Auction, error) {
	return r.getAuction(ctx, id, " FOR UPDATE")
}

// GetAuctionByIDForShare retrieves an auction under a shared row lock
func (r *PostgresAuctionRepository) GetAuctionByIDForShare(ctx context.Context, id uuid.UUID) (*auctions.Auction, error) {
	return r.getAuction(ctx, id, " FOR SHARE")
}

func (r *PostgresAuctionRepository) getAuction(ctx context.Context, id uuid.UUID, lock string) (*auctions.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1` + lock

	a, err := scanAuction(pkgdb.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auctions.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}
	return a, nil
}

// ListAuctionsBySeller returns the seller's non-archived auctions, newest first
func (r *PostgresAuctionRepository) ListAuctionsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*auctions.Auction, error) {
	query := `SELECT ` + auctionColumns + `
		FROM auctions
		WHERE seller_id = $1 AND archived_at IS NULL
		ORDER BY created_at DESC`
	return r.listAuctions(ctx, query, sellerID)
}

// ListOpenAuctions returns published auctions still before their end time
func (r *PostgresAuctionRepository) ListOpenAuctions(ctx context.Context, now time.Time) ([]*auctions.Auction, error) {
	query := `SELECT ` + auctionColumns + `
		FROM auctions
		WHERE status = 'published' AND archived_at IS NULL AND (end_time IS NULL OR end_time >= $1)
		ORDER BY created_at DESC`
	return r.listAuctions(ctx, query, now)
}

// ListExpiredAuctionIDs returns published auctions whose end time has passed
func (r *PostgresAuctionRepository) ListExpiredAuctionIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM auctions
		WHERE status = 'published' AND end_time < $1
		ORDER BY end_time ASC
		LIMIT $2
	`
	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired auctions: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expired auctions: %w", err)
	}
	return ids, nil
}

// UpdateAuction writes every mutable column of the auction
func (r *PostgresAuctionRepository) UpdateAuction(ctx context.Context, a *auctions.Auction) error {
	query := `
		UPDATE auctions
		SET name = $2, status = $3::auction_status, start_time = $4, end_time = $5, pickup_location = $6,
			shipping_allowed = $7, published_at = $8, closed_at = $9, archived_at = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		a.ID, a.Name, string(a.Status), a.StartTime, a.EndTime, a.PickupLocation,
		a.ShippingAllowed, a.PublishedAt, a.ClosedAt, a.ArchivedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update auction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return auctions.ErrAuctionNotFound
	}
	return nil
}

// DeleteAuction removes the auction; items, comps and bids cascade
func (r *PostgresAuctionRepository) DeleteAuction(ctx context.Context, id uuid.UUID) error {
	result, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM auctions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete auction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return auctions.ErrAuctionNotFound
	}
	return nil
}

func (r *PostgresAuctionRepository) listAuctions(ctx context.Context, query string, args ...any) ([]*auctions.Auction, error) {
	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query auctions: %w", err)
	}
	defer rows.Close()

	var out []*auctions.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAuction(row pgx.Row) (*auctions.Auction, error) {
	var (
		a      auctions.Auction
		status string
	)
	err := row.Scan(
		&a.ID, &a.SellerID, &a.Name, &status, &a.IsDemo, &a.StartTime, &a.EndTime, &a.PickupLocation,
		&a.ShippingAllowed, &a.PublishedAt, &a.ClosedAt, &a.ArchivedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = auctions.Status(status)
	return &a, nil
}
