package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/order-service/internal/adapter"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/models"
)

type userService struct {
	userAdapter adapter.UserServiceAdapter
	userCache   store.UserCache

	logger *logger.Logger
}

func NewUserService(userAdapter adapter.UserServiceAdapter, userCache store.UserCache, logger *logger.Logger) UserService {
	return &userService{
		userAdapter: userAdapter,
		userCache:   userCache,
		logger:      logger,
	}
}

// GetUserByID reads through the user cache. Cache failures are only logged:
// the user service stays the source of truth.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContextOr(ctx, s.logger)

	user, found, err := s.userCache.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", id).Str("func", "*userService.GetUserByID").Msg("error reading user from cache")
	}
	if found {
		return user, nil
	}

	user, err = s.userAdapter.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	// the payload id decides the cache key, so a mismatching body must not be stored
	if user.ID != id {
		log.Warn().Int64("user_id", id).Int64("payload_user_id", user.ID).
			Str("func", "*userService.GetUserByID").
			Msg("user service returned a different user id, skipping cache")
		return user, nil
	}

	if err = s.userCache.Set(ctx, user); err != nil {
		log.Warn().Err(err).Int64("user_id", id).Str("func", "*userService.GetUserByID").Msg("error writing user to cache")
	}

	return user, nil
}
