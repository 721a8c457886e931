package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/order-service/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	orderColumns     = []string{"id", "user_id", "status", "creation_date", "updated_at"}
	orderItemColumns = []string{"oi.id", "oi.order_id", "oi.quantity", "i.id", "i.name", "i.price"}
	itemColumns      = []string{"id", "name", "price"}
)

const (
	deleteAllOrders = `DELETE FROM orders;`
)

func buildInsertOrderQuery(_ context.Context, order models.Order) (string, []any, error) {
	query, args, err := psql.
		Insert(order.TableName()).
		Columns("user_id", "status").
		Values(order.UserID, string(order.Status)).
		Suffix("RETURNING id, creation_date, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateOrderQuery(_ context.Context, order models.Order) (string, []any, error) {
	query, args, err := psql.
		Update(order.TableName()).
		Set("user_id", order.UserID).
		Set("status", string(order.Status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": order.ID}).
		Suffix("RETURNING creation_date, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteOrderItemsQuery(_ context.Context, orderID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.OrderItem{}.TableName()).
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertOrderItemsQuery builds one multi-row INSERT returning ids in
// insertion order.
func buildInsertOrderItemsQuery(_ context.Context, orderID int64, items []models.OrderItem) (string, []any, error) {
	if len(items) == 0 {
		return "", nil, fmt.Errorf("%w: no order items to insert", ErrBuildingSQLQuery)
	}

	builder := psql.
		Insert(models.OrderItem{}.TableName()).
		Columns("order_id", "item_id", "quantity")
	for _, item := range items {
		builder = builder.Values(orderID, item.Item.ID, item.Quantity)
	}

	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectOrdersQuery selects order rows filtered by where, ascending by id.
// A nil where selects every order.
func buildSelectOrdersQuery(_ context.Context, where sq.Sqlizer) (string, []any, error) {
	builder := psql.
		Select(orderColumns...).
		From(models.Order{}.TableName()).
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectOrderItemsQuery(_ context.Context, orderIDs []int64) (string, []any, error) {
	query, args, err := psql.
		Select(orderItemColumns...).
		From("order_items oi").
		Join("items i ON i.id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.order_id", "oi.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildExistsOrderQuery(_ context.Context, id int64) (string, []any, error) {
	query, args, err := psql.
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM orders WHERE id = ?)", id)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteOrderQuery(_ context.Context, id int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Order{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectItemQuery(_ context.Context, id int64) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
