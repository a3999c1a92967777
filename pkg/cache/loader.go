package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sternrassler/hydrate/pkg/hydrate"
)

// ErrCacheMiss indicates the requested key was not found in cache.
var ErrCacheMiss = errors.New("cache miss")

// Config holds cached loader configuration.
type Config struct {
	// Namespace separates cached values of different types.
	Namespace string

	// TTL is how long entries stay cached.
	TTL time.Duration
}

// DefaultConfig returns a safe default configuration for the given namespace.
func DefaultConfig(namespace string) Config {
	return Config{
		Namespace: namespace,
		TTL:       60 * time.Second,
	}
}

// CachedLoader wraps a hydrate.Loader with a Redis cache.
//
// Values must round-trip through encoding/json.
type CachedLoader[T any] struct {
	inner  hydrate.Loader[T]
	redis  *redis.Client
	config Config
	logger zerolog.Logger
}

// NewCachedLoader creates a caching decorator around inner.
func NewCachedLoader[T any](inner hydrate.Loader[T], redisClient *redis.Client, cfg Config) (*CachedLoader[T], error) {
	if inner == nil {
		return nil, fmt.Errorf("inner loader is required")
	}
	if redisClient == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("ttl must be positive (got %v)", cfg.TTL)
	}

	return &CachedLoader[T]{
		inner:  inner,
		redis:  redisClient,
		config: cfg,
		logger: log.With().Str("component", "cached-loader").Str("namespace", cfg.Namespace).Logger(),
	}, nil
}

// Load implements hydrate.Loader. A cache hit returns the stored value
// without invoking the wrapped loader; a miss loads through and stores
// the result. Redis failures degrade to a direct load.
func (c *CachedLoader[T]) Load(ctx context.Context, id string) (T, error) {
	key := Key{Namespace: c.config.Namespace, ID: id}.String()

	cached, err := c.get(ctx, key)
	if err == nil {
		CacheHits.WithLabelValues(c.config.Namespace).Inc()
		c.logger.Debug().Str("id", id).Bool("cache_hit", true).Msg("Cache hit")
		return cached, nil
	}
	if err == ErrCacheMiss {
		CacheMisses.WithLabelValues(c.config.Namespace).Inc()
	} else {
		c.logger.Warn().Err(err).Str("id", id).Msg("Cache get error - falling back to direct load")
	}

	value, err := c.inner.Load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := c.set(ctx, key, value); err != nil {
		c.logger.Warn().Err(err).Str("id", id).Msg("Failed to cache loaded value")
	} else {
		c.logger.Debug().
			Str("id", id).
			Dur("ttl", c.config.TTL).
			Msg("Cached loaded value")
	}

	return value, nil
}

// Delete removes the cached value for id, if any.
func (c *CachedLoader[T]) Delete(ctx context.Context, id string) error {
	key := Key{Namespace: c.config.Namespace, ID: id}.String()

	if err := c.redis.Del(ctx, key).Err(); err != nil {
		CacheErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *CachedLoader[T]) get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return zero, ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return zero, fmt.Errorf("redis get: %w", err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		CacheErrors.WithLabelValues("get").Inc()
		return zero, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	return value, nil
}

func (c *CachedLoader[T]) set(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, c.config.TTL).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}
