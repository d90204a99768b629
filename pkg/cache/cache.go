// Package cache wraps Redis for the product-list snapshot.
//
// The cache is best-effort: when Redis is unreachable every operation is a
// safe no-op and callers fall through to the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/modece/storefront/config"
	"github.com/modece/storefront/pkg/metrics"
)

// Cache is a thin JSON-marshalling layer over a Redis client.
// A nil *Cache (or one whose connection failed) no-ops on every call.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
// On ping failure the returned Cache is still usable (as a no-op) so the
// caller can log a warning and continue without caching.
func New(cfg config.RedisConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return &Cache{}, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

// Get retrieves a cached value by key and unmarshals it into dest.
// Returns true on a cache hit, false on miss or error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		metrics.CacheMisses.Inc()
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.CacheMisses.Inc()
		return false
	}

	metrics.CacheHits.Inc()
	return true
}

// Set stores value under key for the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes one or more keys.
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
