package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/floroz/estate-gavel/pkg/logging"
	"github.com/floroz/estate-gavel/pkg/redisconn"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/adapters/pubsub"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/adapters/ws"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/config"
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

	rdb, err := redisconn.Open(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	logger.Info("Redis Connected")

	hub := ws.NewHub(logger.With("component", "hub"))
	subscriptions := pubsub.NewSubscriptionManager(rdb, hub, logger.With("component", "subscriptions"))
	defer subscriptions.Close()
	hub.SetSubscriber(subscriptions)

	handler := ws.NewHandler(hub, cfg.AllowedOrigins, logger)

	// No write timeout: websocket connections are long lived.
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Live Feed Gateway", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Live Feed Gateway stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Live Feed Gateway stopped")
}
