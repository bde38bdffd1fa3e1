// Package cache is a JSON read-through cache on Redis. A nil *Store (or one
// whose Redis is unreachable at startup) turns every call into a no-op, so
// callers never branch on whether caching is enabled.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/rentalease/config"
	"github.com/shashiranjanraj/rentalease/pkg/logger"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

const driver = "redis"

type Store struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// New wraps an existing client. ttl is the default expiry used by Remember.
func New(rdb redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Connect dials Redis from config and verifies it with a ping.
func Connect(ctx context.Context) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return New(rdb, config.CacheTTL()), nil
}

func (s *Store) enabled() bool { return s != nil && s.rdb != nil }

// Get unmarshals the cached value into dest. Returns true on a hit.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if !s.enabled() {
		return false
	}

	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WithCtx(ctx).Warn("cache: get failed", "key", key, "error", err)
		}
		metrics.CacheMisses.WithLabelValues(driver).Inc()
		return false
	}

	if err := json.Unmarshal(val, dest); err != nil {
		metrics.CacheMisses.WithLabelValues(driver).Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues(driver).Inc()
	return true
}

// Set stores value under key. A zero ttl uses the store's default.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !s.enabled() {
		return nil
	}
	if ttl == 0 {
		ttl = s.ttl
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return s.rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if !s.enabled() || len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Remember returns the cached value for key or calls load, caches its
// result and returns it. Cache write failures are logged, not returned.
func Remember[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if s.Get(ctx, key, &cached) {
		return cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if err := s.Set(ctx, key, v, 0); err != nil {
		logger.WithCtx(ctx).Warn("cache: set failed", "key", key, "error", err)
	}
	return v, nil
}

// Version counts writes to the data behind a set of cached keys. Writers call
// Bump before they invalidate; RememberVersion uses it to detect a write that
// raced its load.
type Version struct {
	n atomic.Uint64
}

func (v *Version) Bump() { v.n.Add(1) }

// RememberVersion is Remember for data guarded by v. When a write bumps v
// while load runs, the value just cached may predate that write's
// invalidation, so the key is deleted again. Across processes each Version
// is local and staleness stays bounded by the key's ttl.
func RememberVersion[T any](ctx context.Context, s *Store, v *Version, key string, load func(context.Context) (T, error)) (T, error) {
	before := v.n.Load()

	val, err := Remember(ctx, s, key, load)
	if err != nil {
		return val, err
	}

	if v.n.Load() != before {
		if err := s.Del(ctx, key); err != nil {
			logger.WithCtx(ctx).Warn("cache: del failed", "key", key, "error", err)
		}
	}
	return val, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	if !s.enabled() {
		return nil
	}
	return s.rdb.Close()
}
