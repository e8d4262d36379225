package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/estate-gavel/pkg/clock"
	"github.com/floroz/estate-gavel/services/auction-service/internal/app"
	"github.com/floroz/estate-gavel/services/auction-service/internal/config"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
)

func testConfig() *config.Config {
	return &config.Config{
		StorageDriver:       config.DriverMemory,
		LockTimeout:         time.Second,
		ExpirySweepInterval: 10 * time.Millisecond,
		ExpirySweepBatch:    10,
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.StorageDriver = "sqlite"

	_, err := app.OpenStorage(context.Background(), cfg, logger)
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestMemoryStorage_ServicesShareState(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	storage, err := app.OpenStorage(ctx, testConfig(), logger)
	require.NoError(t, err)
	defer storage.Close()

	svc := app.NewServices(storage, nil, nil, clock.System(), logger)
	sellerID := uuid.New()

	created, err := svc.Lifecycle.CreateAuction(ctx, sellerID, auctions.CreateAuctionCommand{Name: "Estate of J. Doe"})
	require.NoError(t, err)

	list, err := svc.Lifecycle.ListSellerAuctions(ctx, sellerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestRunWorkers_StopsOnCancelWithoutRabbitMQ(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()

	storage, err := app.OpenStorage(context.Background(), cfg, logger)
	require.NoError(t, err)
	svc := app.NewServices(storage, nil, nil, clock.System(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunWorkers(ctx, cfg, storage, svc.Lifecycle, logger) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}
