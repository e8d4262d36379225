// Package app assembles the auction-service from its configuration. Both
// binaries build their dependencies here.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/floroz/estate-gavel/pkg/clock"
	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	pkgevents "github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/cache"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/memory"
	"github.com/floroz/estate-gavel/services/auction-service/internal/config"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
	"github.com/floroz/estate-gavel/services/auction-service/migrations"
)

// OutboxStore is written by the domain and drained by the relay
type OutboxStore interface {
	auctions.OutboxRepository
	pkgevents.OutboxRepository
}

// Storage is one storage driver's set of repositories
type Storage struct {
	Driver    string
	TxManager pkgdb.TransactionManager
	Auctions  auctions.AuctionRepository
	Items     auctions.ItemRepository
	Comps     auctions.CompRepository
	Bids      bids.BidRepository
	Orders    bids.OrderRepository
	Outbox    OutboxStore
	close     func()
}

// Close releases the driver's connections
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the configured driver. For postgres it applies pending
// migrations first when cfg.RunMigrations is set.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &Storage{
			Driver:    config.DriverMemory,
			TxManager: memory.NewTransactionManager(store, cfg.LockTimeout),
			Auctions:  store,
			Items:     store,
			Comps:     store,
			Bids:      store,
			Orders:    store,
			Outbox:    store,
		}, nil

	case config.DriverPostgres:
		if cfg.RunMigrations {
			if err := pkgdb.Migrate(ctx, cfg.DatabaseURL, migrations.FS); err != nil {
				return nil, err
			}
			logger.Info("Migrations applied")
		}
		pool, err := pkgdb.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Postgres Connected")
		return &Storage{
			Driver:    config.DriverPostgres,
			TxManager: pkgdb.NewPostgresTransactionManager(pool, cfg.LockTimeout),
			Auctions:  database.NewPostgresAuctionRepository(pool),
			Items:     database.NewPostgresItemRepository(pool),
			Comps:     database.NewPostgresCompRepository(pool),
			Bids:      database.NewPostgresBidRepository(pool),
			Orders:    database.NewPostgresOrderRepository(pool),
			Outbox:    database.NewPostgresOutboxRepository(pool),
			close:     pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Services are the domain services over one storage
type Services struct {
	Lifecycle   *auctions.Service
	Engine      *bids.Engine
	Orders      *bids.OrderService
	Projections *projections.Service
}

// NewServices builds the domain services. snapshots and metrics may be nil.
func NewServices(
	storage *Storage,
	snapshots *cache.RedisSnapshotCache,
	metrics bids.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) *Services {
	// A nil *RedisSnapshotCache must reach the services as a nil interface.
	var (
		invalidator auctions.SnapshotInvalidator
		viewCache   projections.Cache
	)
	if snapshots != nil {
		invalidator = snapshots
		viewCache = snapshots
	}

	return &Services{
		Lifecycle: auctions.NewService(
			storage.TxManager, storage.Auctions, storage.Items, storage.Comps, storage.Outbox,
			invalidator, clk, logger.With("component", "lifecycle"),
		),
		Engine: bids.NewEngine(
			storage.TxManager, storage.Auctions, storage.Items, bids.NewLedger(storage.Bids),
			storage.Orders, storage.Outbox, clk, metrics, logger.With("component", "engine"),
		),
		Orders: bids.NewOrderService(storage.Orders, storage.Auctions),
		Projections: projections.NewService(
			storage.Auctions, storage.Items, storage.Bids, storage.Comps,
			viewCache, clk, logger.With("component", "projections"),
		),
	}
}
