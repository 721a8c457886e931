package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Orders live in the "orders" table and their positions in
// "order_items", which references "orders" with ON DELETE CASCADE.
//
// Every method is executed through [withRetry], so transient connection and
// serialization failures are retried before an error reaches the caller.
type orderRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// Save writes the order row and replaces its order items in one transaction.
//
// When order.ID is zero a new row is inserted; otherwise the existing row is
// updated and [ErrOrderNotFound] is returned if it does not exist. The
// returned order carries the database-assigned ids and timestamps.
func (r *orderRepository) Save(ctx context.Context, order models.Order) (models.Order, error) {
	return withRetry(ctx, r.db, func(ctx context.Context) (models.Order, error) {
		return r.save(ctx, order)
	})
}

func (r *orderRepository) save(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContextOr(ctx, r.logger)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.Save").Msg("failed to begin transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := order
	if order.ID == 0 {
		saved, err = r.insertOrder(ctx, tx, order)
	} else {
		saved, err = r.updateOrder(ctx, tx, order)
	}
	if err != nil {
		return models.Order{}, err
	}

	items, err := r.replaceOrderItems(ctx, tx, saved.ID, order.OrderItems)
	if err != nil {
		return models.Order{}, err
	}
	saved.OrderItems = items

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.Save").Int64("order_id", saved.ID).Msg("failed to commit transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

func (r *orderRepository) insertOrder(ctx context.Context, tx *sql.Tx, order models.Order) (models.Order, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildInsertOrderQuery(ctx, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.insertOrder").Msg("failed to create query")
		return models.Order{}, err
	}

	row := tx.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.insertOrder").Int64("user_id", order.UserID).Msg("failed to insert order")
		return models.Order{}, wrapPgError(ErrExecutingStatement, err)
	}

	if err = row.Scan(&order.ID, &order.CreationDate, &order.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*orderRepository.insertOrder").Msg("failed to scan inserted order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

func (r *orderRepository) updateOrder(ctx context.Context, tx *sql.Tx, order models.Order) (models.Order, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildUpdateOrderQuery(ctx, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.updateOrder").Msg("failed to create query")
		return models.Order{}, err
	}

	row := tx.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.updateOrder").Int64("order_id", order.ID).Msg("failed to update order")
		return models.Order{}, wrapPgError(ErrExecutingStatement, err)
	}

	if err = row.Scan(&order.CreationDate, &order.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		log.Err(err).Str("func", "*orderRepository.updateOrder").Int64("order_id", order.ID).Msg("failed to scan updated order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

func (r *orderRepository) replaceOrderItems(ctx context.Context, tx *sql.Tx, orderID int64, items []models.OrderItem) ([]models.OrderItem, error) {
	log := logger.FromContextOr(ctx, r.logger)

	deleteQuery, deleteArgs, err := buildDeleteOrderItemsQuery(ctx, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Msg("failed to create query")
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Int64("order_id", orderID).Msg("failed to delete old order items")
		return nil, wrapPgError(ErrExecutingStatement, err)
	}

	if len(items) == 0 {
		return []models.OrderItem{}, nil
	}

	insertQuery, insertArgs, err := buildInsertOrderItemsQuery(ctx, orderID, items)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Msg("failed to create query")
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Int64("order_id", orderID).Msg("failed to insert order items")
		return nil, wrapPgError(ErrExecutingStatement, err)
	}
	defer rows.Close()

	saved := make([]models.OrderItem, 0, len(items))
	for i := 0; rows.Next(); i++ {
		if i >= len(items) {
			return nil, fmt.Errorf("%w: more ids returned than items inserted", ErrScanningRows)
		}
		item := items[i]
		if err = rows.Scan(&item.ID); err != nil {
			log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Msg("failed to scan order item id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.OrderID = orderID
		saved = append(saved, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.replaceOrderItems").Int64("order_id", orderID).Msg("error occurred during rows iteration")
		return nil, wrapPgError(ErrScanningRows, err)
	}

	return saved, nil
}

// FindByID returns the order with its items or [ErrOrderNotFound].
func (r *orderRepository) FindByID(ctx context.Context, id int64) (models.Order, error) {
	orders, err := withRetry(ctx, r.db, func(ctx context.Context) ([]models.Order, error) {
		return r.findOrders(ctx, sq.Eq{"id": id})
	})
	if err != nil {
		return models.Order{}, err
	}

	if len(orders) == 0 {
		return models.Order{}, ErrOrderNotFound
	}

	return orders[0], nil
}

// FindAllByIDs returns the existing orders among ids in ascending id order.
// Unknown ids are skipped.
func (r *orderRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]models.Order, error) {
	if len(ids) == 0 {
		return []models.Order{}, nil
	}

	return withRetry(ctx, r.db, func(ctx context.Context) ([]models.Order, error) {
		return r.findOrders(ctx, sq.Eq{"id": ids})
	})
}

func (r *orderRepository) FindByStatus(ctx context.Context, status models.Status) ([]models.Order, error) {
	return withRetry(ctx, r.db, func(ctx context.Context) ([]models.Order, error) {
		return r.findOrders(ctx, sq.Eq{"status": string(status)})
	})
}

// findOrders selects order rows matching where and attaches their items.
func (r *orderRepository) findOrders(ctx context.Context, where sq.Sqlizer) ([]models.Order, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectOrdersQuery(ctx, where)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrders").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrders").Msg("failed to execute query for getting orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var order models.Order
		if err = rows.Scan(&order.ID, &order.UserID, &order.Status, &order.CreationDate, &order.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*orderRepository.findOrders").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		order.OrderItems = []models.OrderItem{}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.findOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if items, ok := itemsByOrder[orders[i].ID]; ok {
			orders[i].OrderItems = items
		}
	}

	return orders, nil
}

func (r *orderRepository) findOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]models.OrderItem, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectOrderItemsQuery(ctx, orderIDs)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrderItems").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrderItems").Int("orders_count", len(orderIDs)).Msg("failed to execute query for getting order items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]models.OrderItem, len(orderIDs))
	for rows.Next() {
		var item models.OrderItem
		if err = rows.Scan(&item.ID, &item.OrderID, &item.Quantity, &item.Item.ID, &item.Item.Name, &item.Item.Price); err != nil {
			log.Err(err).Str("func", "*orderRepository.findOrderItems").Msg("failed to scan order item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.findOrderItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *orderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return withRetry(ctx, r.db, func(ctx context.Context) (bool, error) {
		log := logger.FromContextOr(ctx, r.logger)

		query, args, err := buildExistsOrderQuery(ctx, id)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.ExistsByID").Msg("failed to create query")
			return false, err
		}

		var exists bool
		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
			log.Err(err).Str("func", "*orderRepository.ExistsByID").Int64("order_id", id).Msg("failed to check order existence")
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return exists, nil
	})
}

// DeleteByID removes the order; its items are removed by the cascade.
// Returns [ErrOrderNotFound] when nothing was deleted.
func (r *orderRepository) DeleteByID(ctx context.Context, id int64) error {
	return execWithRetry(ctx, r.db, func(ctx context.Context) error {
		log := logger.FromContextOr(ctx, r.logger)

		query, args, err := buildDeleteOrderQuery(ctx, id)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.DeleteByID").Msg("failed to create query")
			return err
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.DeleteByID").Int64("order_id", id).Msg("failed to delete order")
			return wrapPgError(ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrOrderNotFound
		}

		return nil
	})
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	return execWithRetry(ctx, r.db, func(ctx context.Context) error {
		if _, err := r.db.ExecContext(ctx, deleteAllOrders); err != nil {
			logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*orderRepository.DeleteAll").Msg("failed to delete orders")
			return wrapPgError(ErrExecutingStatement, err)
		}
		return nil
	})
}
