package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/observability"
)

// jsonCache stores JSON encoded values in Redis. A nil client disables caching.
type jsonCache struct {
	client *redis.Client
	ttl    time.Duration
	name   string
	logger zerolog.Logger
}

func newJSONCache(client *redis.Client, ttl time.Duration, name string, logger zerolog.Logger) jsonCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return jsonCache{client: client, ttl: ttl, name: name, logger: logger}
}

// get decodes the cached value into dest and reports whether it was found.
func (c jsonCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to read cache")
			observability.CacheLookups().WithLabelValues(c.name, "error").Inc()
			return false
		}
		observability.CacheLookups().WithLabelValues(c.name, "miss").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		observability.CacheLookups().WithLabelValues(c.name, "error").Inc()
		return false
	}

	observability.CacheLookups().WithLabelValues(c.name, "hit").Inc()
	return true
}

func (c jsonCache) set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to store cache entry")
	}
}
