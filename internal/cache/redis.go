package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unclebandit/influencer-admin/internal/config"
	"github.com/unclebandit/influencer-admin/internal/model"
)

const keyPrefix = "influencer-admin:snapshot"

// NewRedisClient connects to Redis. Returns nil if no address is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

func versionKey() string { return keyPrefix + ":version" }

func entryKey(version int64) string { return fmt.Sprintf("%s:v%d", keyPrefix, version) }

func (c *RedisSnapshotCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache version: %w", err)
	}
	return v, nil
}

func (c *RedisSnapshotCache) Get(ctx context.Context, version int64) (*model.Snapshot, bool, error) {
	raw, err := c.client.Get(ctx, entryKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached snapshot: %w", err)
	}

	var s model.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return s.Normalize(), true, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, version int64, s *model.Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, entryKey(version), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write cached snapshot: %w", err)
	}
	return nil
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey()).Err(); err != nil {
		return fmt.Errorf("bump cache version: %w", err)
	}
	return nil
}

var _ SnapshotCache = (*RedisSnapshotCache)(nil)
