//go:build integration

package events_test

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/estate-gavel/pkg/events"
	"github.com/floroz/estate-gavel/pkg/testhelpers"
)

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	amqpURL := testhelpers.NewTestRabbitMQ(t)

	conn, err := amqp.Dial(amqpURL)
	require.NoError(t, err)
	defer conn.Close()

	publisher, err := events.NewRabbitMQPublisher(conn, events.Exchange)
	require.NoError(t, err)
	defer publisher.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, false, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "bid.#", events.Exchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)

	body, err := events.EncodePayload(map[string]any{"item_id": "i1", "amount": "105.00"})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, events.Exchange, events.EventTypeBidPlaced, body))

	select {
	case msg := <-msgs:
		assert.Equal(t, events.EventTypeBidPlaced, msg.RoutingKey)
		fields, err := events.DecodePayload(msg.Body)
		require.NoError(t, err)
		assert.Equal(t, "105.00", fields["amount"])
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for message from RabbitMQ")
	}
}
