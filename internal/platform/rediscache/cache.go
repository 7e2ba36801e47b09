// Package rediscache provides a Redis-backed read-through cache for verbs
// and hit/miss accounting for the cache stats endpoint.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aperrault/phraseur/internal/domain"
)

// Key layout. Counters live beside the cached entries so Stats needs no scan.
const (
	verbKeyPrefix = "verb:"
	hitsKey       = "cache:hits"
	missesKey     = "cache:misses"
)

// defaultTTL bounds staleness of cached verbs against upserts performed by
// other processes.
const defaultTTL = 24 * time.Hour

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Keys   int64 `json:"keys"`
}

// Cache is a thin wrapper over a Redis client. A miss is never an error:
// callers fall through to the store and repopulate.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects to Redis using a redis:// URL and verifies the connection.
func New(ctx context.Context, url string, logger *slog.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Cache{
		client: client,
		logger: logger.With(slog.String("component", "redis_cache")),
	}, nil
}

// GetVerb retrieves a cached verb by infinitive. The second return value
// reports whether the verb was found; cache errors degrade to a miss.
func (c *Cache) GetVerb(ctx context.Context, infinitive string) (*domain.Verb, bool) {
	raw, err := c.client.Get(ctx, verbKeyPrefix+infinitive).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed",
				slog.String("error", err.Error()),
				slog.String("infinitive", infinitive))
		}
		c.count(ctx, missesKey)
		return nil, false
	}

	var verb domain.Verb
	if err := json.Unmarshal(raw, &verb); err != nil {
		c.logger.Warn("cache entry corrupt, dropping",
			slog.String("error", err.Error()),
			slog.String("infinitive", infinitive))
		_ = c.client.Del(ctx, verbKeyPrefix+infinitive).Err()
		c.count(ctx, missesKey)
		return nil, false
	}

	c.count(ctx, hitsKey)
	return &verb, true
}

// SetVerb stores a verb under its infinitive. Failures are logged, not
// surfaced: the cache is best-effort.
func (c *Cache) SetVerb(ctx context.Context, verb *domain.Verb) {
	raw, err := json.Marshal(verb)
	if err != nil {
		c.logger.Warn("failed to marshal verb for cache",
			slog.String("error", err.Error()),
			slog.String("infinitive", verb.Infinitive))
		return
	}

	if err := c.client.Set(ctx, verbKeyPrefix+verb.Infinitive, raw, defaultTTL).Err(); err != nil {
		c.logger.Warn("cache write failed",
			slog.String("error", err.Error()),
			slog.String("infinitive", verb.Infinitive))
	}
}

// Stats returns the hit/miss counters and the current key count.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	hits, err := c.client.Get(ctx, hitsKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Stats{}, err
	}

	misses, err := c.client.Get(ctx, missesKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Stats{}, err
	}

	keys, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return Stats{}, err
	}

	return Stats{Hits: hits, Misses: misses, Keys: keys}, nil
}

// Ping verifies the connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) count(ctx context.Context, key string) {
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		c.logger.Debug("failed to bump cache counter",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
