// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every persistence component used by the service layer.
type Storages struct {
	OrderRepository OrderRepository
	ItemRepository  ItemRepository
	UserCache       UserCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. The Redis user cache is created only when an address is
// configured; otherwise a no-op cache is used.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		OrderRepository: NewOrderRepository(db, log),
		ItemRepository:  NewItemRepository(db, log),
		UserCache:       NewNoopUserCache(),
		db:              db,
	}

	if cfg.Cache.RedisAddress == "" {
		log.Info().Str("func", "NewStorages").Msg("redis address is not set, user cache disabled")
		return storages, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddress,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting redis (ping)")
		_ = client.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewStorages").Msg("connected to redis successfully")

	storages.redis = client
	storages.UserCache = NewRedisUserCache(client, cfg.Cache.UserTTL, log)

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
