// Package cache keeps short-lived public auction snapshots in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
)

// RedisSnapshotCache implements projections.Cache and auctions.SnapshotInvalidator
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache creates a cache whose entries expire after ttl
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

// SnapshotKey is the Redis key holding an auction's public snapshot
func SnapshotKey(auctionID uuid.UUID) string {
	return "auction:" + auctionID.String() + ":public"
}

// GetPublicAuction returns the cached snapshot, or nil on a miss
func (c *RedisSnapshotCache) GetPublicAuction(ctx context.Context, auctionID uuid.UUID) (*projections.PublicAuction, error) {
	raw, err := c.client.Get(ctx, SnapshotKey(auctionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var view projections.PublicAuction
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &view, nil
}

// SetPublicAuction stores the snapshot with the configured ttl
func (c *RedisSnapshotCache) SetPublicAuction(ctx context.Context, view *projections.PublicAuction) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, SnapshotKey(view.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the auction's snapshot so the next read rebuilds it
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, auctionID uuid.UUID) error {
	if err := c.client.Del(ctx, SnapshotKey(auctionID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot: %w", err)
	}
	return nil
}
