//go:build integration

package events_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgdb "github.com/floroz/estate-gavel/pkg/database"
	pkgevents "github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/pkg/testhelpers"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/database"
	"github.com/floroz/estate-gavel/services/auction-service/internal/adapters/events"
	"github.com/floroz/estate-gavel/services/auction-service/migrations"
)

func TestAuctionEventsProducerIntegration(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	amqpURL := testhelpers.NewTestRabbitMQ(t)

	testDB := testhelpers.NewTestDatabase(t, migrations.FS)
	defer testDB.Close()
	pool := testDB.Pool

	conn, err := amqp.Dial(amqpURL)
	require.NoError(t, err)
	defer conn.Close()

	producer, err := events.NewAuctionEventsProducer(
		database.NewPostgresOutboxRepository(pool),
		pkgdb.NewPostgresTransactionManager(pool, time.Second),
		conn,
		events.ProducerConfig{Exchange: pkgevents.Exchange, BatchSize: 10, Interval: 50 * time.Millisecond},
		logger,
	)
	require.NoError(t, err)
	defer producer.Close()

	consumerConn, err := amqp.Dial(amqpURL)
	require.NoError(t, err)
	defer consumerConn.Close()

	ch, err := consumerConn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, false, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "bid.#", pkgevents.Exchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)

	auctionID := uuid.New()
	event, err := pkgevents.NewOutboxEvent(pkgevents.EventTypeBidPlaced, auctionID, map[string]any{
		"auction_id": auctionID.String(),
		"amount":     "105.00",
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, database.NewPostgresOutboxRepository(pool).SaveEvent(ctx, event))

	ctxProducer, cancelProducer := context.WithCancel(ctx)
	defer cancelProducer()
	go func() {
		_ = producer.Run(ctxProducer)
	}()

	select {
	case msg := <-msgs:
		assert.Equal(t, pkgevents.EventTypeBidPlaced, msg.RoutingKey)
		fields, err := pkgevents.DecodePayload(msg.Body)
		require.NoError(t, err)
		assert.Equal(t, "105.00", fields["amount"])
	case <-time.After(10 * time.Second):
		t.Fatal("Timeout waiting for message from RabbitMQ")
	}

	require.Eventually(t, func() bool {
		var status string
		err := pool.QueryRow(ctx, "SELECT status::text FROM outbox_events WHERE id = $1", event.ID).Scan(&status)
		return err == nil && status == string(pkgevents.OutboxStatusPublished)
	}, 5*time.Second, 100*time.Millisecond, "event should be marked published")
}
