package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// GetItemByID returns the catalog item with the given id. Non-positive ids
// never exist, so they are reported as missing without a database round trip.
func (s *itemService) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, itemNotFound(id)
	}

	item, err := s.itemRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.Item{}, itemNotFound(id)
	}
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "*itemService.GetItemByID").
			Int64("item_id", id).
			Msg("failed to load item")
		return models.Item{}, fmt.Errorf("error getting item %d: %w", id, err)
	}

	return item, nil
}
