package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/models"
	"github.com/redis/go-redis/v9"
)

const userCacheKeyPrefix = "order-service:user:"

// redisUserCache stores users as JSON strings under
// "order-service:user:<id>" with a fixed TTL.
type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedisUserCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) UserCache {
	logger.Debug().Dur("ttl", ttl).Msg("creating redis user cache")
	return &redisUserCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func userCacheKey(id int64) string {
	return userCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *redisUserCache) Get(ctx context.Context, id int64) (models.User, bool, error) {
	raw, err := c.client.Get(ctx, userCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var user models.User
	if err = json.Unmarshal(raw, &user); err != nil {
		// a corrupted entry behaves like a miss
		logger.FromContextOr(ctx, c.logger).Warn().Err(err).
			Str("func", "*redisUserCache.Get").
			Int64("user_id", id).
			Msg("dropping unreadable cache entry")
		c.client.Del(ctx, userCacheKey(id))
		return models.User{}, false, nil
	}

	return user, true, nil
}

func (c *redisUserCache) Set(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}

	if err = c.client.Set(ctx, userCacheKey(user.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

// noopUserCache is used when no Redis address is configured.
type noopUserCache struct{}

func NewNoopUserCache() UserCache {
	return noopUserCache{}
}

func (noopUserCache) Get(context.Context, int64) (models.User, bool, error) {
	return models.User{}, false, nil
}

func (noopUserCache) Set(context.Context, models.User) error {
	return nil
}
