package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/pkg/logging"
	"github.com/floroz/estate-gavel/pkg/redisconn"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/api"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/cache"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/metrics"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	// 2. Public snapshot cache (optional)
	var snapshots *cache.RedisSnapshotCache
	if cfg.RedisURL != "" {
		rdb, err := redisconn.Open(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis connection failed, serving public views uncached", "error", err)
		} else {
			defer rdb.Close()
			snapshots = cache.NewRedisSnapshotCache(rdb, cfg.PublicCacheTTL)
			logger.Info("Redis Connected")
		}
	}

	// 3. Domain services
	bidMetrics := metrics.NewBidMetrics()
	services := app.NewServices(storage, snapshots, bidMetrics, clock.System(), logger)

	signer, err := auth.NewSigner([]byte(cfg.JWTSecret), cfg.JWTAudience, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to create token signer", "error", err)
		os.Exit(1)
	}

	// 4. HTTP
	handler := api.NewAuctionServiceHandler(services.Lifecycle, services.Engine, services.Orders, services.Projections, logger)

	mux := http.NewServeMux()
	api.Mount(mux, handler, signer)
	mux.Handle("/metrics", bidMetrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Use h2c for HTTP/2 without TLS (common for internal services / local dev)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Auction Service API", "addr", cfg.HTTPAddr, "driver", storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// In-memory state is private to this process, so the workers run here.
	if storage.Driver == config.DriverMemory {
		g.Go(func() error {
			return app.RunWorkers(gctx, cfg, storage, services.Lifecycle, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Auction Service stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Auction Service stopped")
}
