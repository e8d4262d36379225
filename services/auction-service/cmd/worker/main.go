package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/logging"
	"github.com/floroz/estate-gavel/pkg/redisconn"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/cache"
	"github.com/floroz/estate-gavel/services/auction-service/internal/app"
	"github.com/floroz/estate-gavel/services/auction-service/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("json", "info").Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	if cfg.StorageDriver != config.DriverPostgres {
		logger.Error("The worker needs shared storage; the memory driver runs its workers inside the API")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	// Closing expired auctions drops their cached public views.
	var snapshots *cache.RedisSnapshotCache
	if cfg.RedisURL != "" {
		rdb, err := redisconn.Open(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis connection failed, cached views expire by TTL", "error", err)
		} else {
			defer rdb.Close()
			snapshots = cache.NewRedisSnapshotCache(rdb, cfg.PublicCacheTTL)
		}
	}

	services := app.NewServices(storage, snapshots, nil, clock.System(), logger)

	if err := app.RunWorkers(ctx, cfg, storage, services.Lifecycle, logger); err != nil {
		logger.Error("Worker failed", "error", err)
		// RunWorkers returns nil on context cancel.
		if ctx.Err() == nil {
			os.Exit(1)
		}
	}

	logger.Info("Worker stopped")
}
