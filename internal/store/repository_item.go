package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/models"
)

// itemRepository reads the "items" catalog table.
type itemRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// FindByID returns the item or [ErrItemNotFound].
func (r *itemRepository) FindByID(ctx context.Context, id int64) (models.Item, error) {
	return withRetry(ctx, r.db, func(ctx context.Context) (models.Item, error) {
		log := logger.FromContextOr(ctx, r.logger)

		query, args, err := buildSelectItemQuery(ctx, id)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.FindByID").Msg("failed to create query")
			return models.Item{}, err
		}

		var item models.Item
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.Price)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.FindByID").Int64("item_id", id).Msg("failed to get item")
			return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return item, nil
	})
}
