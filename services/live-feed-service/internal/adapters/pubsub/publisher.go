// Package pubsub carries feed messages between the worker and the websocket
// gateways over Redis pub/sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/floroz/estate-gavel/services/live-feed-service/internal/domain/feed"
)

// RedisPublisher publishes feed messages on the auction's channel
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, msg *feed.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal feed message: %w", err)
	}
	return p.client.Publish(ctx, feed.ChannelName(msg.AuctionID), string(body)).Err()
}

var _ feed.Publisher = (*RedisPublisher)(nil)
