package pubsub_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floroz/estate-gavel/services/live-feed-service/internal/adapters/pubsub"
	"github.com/floroz/estate-gavel/services/live-feed-service/internal/domain/feed"
)

func TestRedisPublisher_Publish(t *testing.T) {
	msg := &feed.Message{
		Type:       "bid.placed",
		AuctionID:  uuid.New(),
		Data:       map[string]any{"amount": "105.00"},
		ReceivedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	tests := []struct {
		name    string
		setup   func(redismock.ClientMock)
		wantErr bool
	}{
		{
			name: "published",
			setup: func(m redismock.ClientMock) {
				m.ExpectPublish(feed.ChannelName(msg.AuctionID), string(body)).SetVal(2)
			},
		},
		{
			name: "redis error",
			setup: func(m redismock.ClientMock) {
				m.ExpectPublish(feed.ChannelName(msg.AuctionID), string(body)).SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setup(mock)

			err := pubsub.NewRedisPublisher(client).Publish(context.Background(), msg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
