package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
)

const bidColumns = `
	id, auction_id, item_id, seq, kind::text, bidder_id, bidder_email, bidder_name, amount::text,
	request_id, created_at`

// ErrLedgerConflict is returned when a ledger position or request id is
// already taken
var ErrLedgerConflict = errors.New("ledger conflict")

// PostgresBidRepository implements bids.BidRepository using pgx
type PostgresBidRepository struct {
	pool *pgxpool.Pool // Keep pool for read-only operations
}

// NewPostgresBidRepository creates a new PostgreSQL bid repository
func NewPostgresBidRepository(pool *pgxpool.Pool) *PostgresBidRepository {
	return &PostgresBidRepository{pool: pool}
}

// InsertBid appends a bid. The (item_id, seq) constraint rejects a second
// writer that read the same tip.
func (r *PostgresBidRepository) InsertBid(ctx context.Context, bid *bids.Bid) error {
	query := `
		INSERT INTO bids (id, auction_id, item_id, seq, kind, bidder_id, bidder_email, bidder_name, amount,
			request_id, created_at)
		VALUES ($1, $2, $3, $4, $5::bid_kind, $6, $7, $8, $9::numeric, $10, $11)
	`
	_, err := pkgdb.Conn(ctx, r.pool).Exec(ctx, query,
		bid.ID, bid.AuctionID, bid.ItemID, bid.Seq, string(bid.Kind), bid.BidderID, bid.BidderEmail,
		bid.BidderName, bid.Amount.String(), bid.RequestID, bid.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", ErrLedgerConflict, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to insert bid: %w", err)
	}
	return nil
}

// GetLastBid returns the bid with the highest seq for the item
func (r *PostgresBidRepository) GetLastBid(ctx context.Context, itemID uuid.UUID) (*bids.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE item_id = $1 ORDER BY seq DESC LIMIT 1`
	return r.getOne(ctx, query, itemID)
}

// GetBidByRequestID finds the bid a request id produced, if any
func (r *PostgresBidRepository) GetBidByRequestID(ctx context.Context, itemID uuid.UUID, requestID string) (*bids.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE item_id = $1 AND request_id = $2`
	return r.getOne(ctx, query, itemID, requestID)
}

// ListBidsByItem returns the item's ledger, most recent first
func (r *PostgresBidRepository) ListBidsByItem(ctx context.Context, itemID uuid.UUID) ([]*bids.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE item_id = $1 ORDER BY seq DESC`
	return r.list(ctx, query, itemID)
}

// ListBidsByAuction returns every ledger of the auction, most recent first per item
func (r *PostgresBidRepository) ListBidsByAuction(ctx context.Context, auctionID uuid.UUID) ([]*bids.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE auction_id = $1 ORDER BY item_id, seq DESC`
	return r.list(ctx, query, auctionID)
}

func (r *PostgresBidRepository) getOne(ctx context.Context, query string, args ...any) (*bids.Bid, error) {
	bid, err := scanBid(pkgdb.Conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return bid, nil
}

func (r *PostgresBidRepository) list(ctx context.Context, query string, arg any) ([]*bids.Bid, error) {
	rows, err := pkgdb.Conn(ctx, r.pool).Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query bids: %w", err)
	}
	defer rows.Close()

	var out []*bids.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bid: %w", err)
		}
		out = append(out, bid)
	}
	return out, rows.Err()
}

func scanBid(row pgx.Row) (*bids.Bid, error) {
	var (
		b      bids.Bid
		kind   string
		amount string
	)
	err := row.Scan(
		&b.ID, &b.AuctionID, &b.ItemID, &b.Seq, &kind, &b.BidderID, &b.BidderEmail, &b.BidderName, &amount,
		&b.RequestID, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Kind = bids.Kind(kind)
	if b.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	return &b, nil
}
