package validators

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/order-service/models"
)

// Field name constants used to specify which fields should be validated.
// They double as the keys of [ValidationError.Fields] and match the JSON
// names of the request bodies.
const (
	// FieldUserID targets the owner of a new order.
	FieldUserID = "userId"

	// FieldOrderItems targets the list of positions of an order request.
	FieldOrderItems = "orderItems"

	// FieldItemID targets the catalog item of a position.
	FieldItemID = "itemId"

	// FieldQuantity targets the number of units of a position.
	FieldQuantity = "quantity"

	// FieldOrderIDs targets a list of order ids in a bulk lookup.
	FieldOrderIDs = "orderIds"

	// FieldID targets a single order id taken from a path.
	FieldID = "id"
)

// OrderValidator implements [Validator] for order requests, order item
// requests, single order ids (int64) and order id lists ([]int64).
//
// Zero numeric values are reported as missing, negative ones as not
// positive.
type OrderValidator struct {
}

// maxQuantity is the largest value the order_items.quantity INTEGER column holds.
const maxQuantity = math.MaxInt32

func NewOrderValidator() Validator {
	return &OrderValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of the request models are accepted.
//
// Returns a [*ValidationError] listing every violated field,
// [ErrUnsupportedType] for an unknown obj and [ErrUnknownField] for an
// unknown field name.
func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OrderRequest:
		return v.validateOrderRequest(ctx, value, fields...)
	case *models.OrderRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateOrderRequest(ctx, *value, fields...)
	case models.UpdateOrderRequest:
		return v.validateUpdateOrderRequest(ctx, value, fields...)
	case *models.UpdateOrderRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdateOrderRequest(ctx, *value, fields...)
	case models.OrderItemRequest:
		return v.validateOrderItemRequest(ctx, value, fields...)
	case *models.OrderItemRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateOrderItemRequest(ctx, *value, fields...)
	case int64:
		return v.validateID(value)
	case []int64:
		return v.validateIDs(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateOrderRequest(ctx context.Context, request models.OrderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOrderItems}
	}

	verr := newValidationError()
	for _, f := range fields {
		switch f {
		case FieldUserID:
			checkPositive(verr, FieldUserID, request.UserID, MsgUserIDNull)
		case FieldOrderItems:
			if err := v.checkOrderItems(ctx, verr, request.OrderItems); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *OrderValidator) validateUpdateOrderRequest(ctx context.Context, request models.UpdateOrderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrderItems}
	}

	verr := newValidationError()
	for _, f := range fields {
		switch f {
		case FieldOrderItems:
			if err := v.checkOrderItems(ctx, verr, request.OrderItems); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *OrderValidator) validateOrderItemRequest(_ context.Context, item models.OrderItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldQuantity}
	}

	verr := newValidationError()
	for _, f := range fields {
		switch f {
		case FieldItemID:
			checkPositive(verr, FieldItemID, item.ItemID, MsgItemIDNull)
		case FieldQuantity:
			checkPositive(verr, FieldQuantity, int64(item.Quantity), MsgQuantityNull)
			if int64(item.Quantity) > maxQuantity {
				verr.add(FieldQuantity, MsgQuantityMax)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// checkOrderItems requires a non-empty list and validates every element,
// reporting element fields as "orderItems[i].<field>".
func (v *OrderValidator) checkOrderItems(ctx context.Context, verr *ValidationError, items []models.OrderItemRequest) error {
	if len(items) == 0 {
		verr.add(FieldOrderItems, MsgNotEmpty)
		return nil
	}

	for i, item := range items {
		err := v.validateOrderItemRequest(ctx, item)
		if err == nil {
			continue
		}

		var itemErr *ValidationError
		if !errors.As(err, &itemErr) {
			return err
		}
		verr.merge(fmt.Sprintf("%s[%d].", FieldOrderItems, i), itemErr)
	}

	return nil
}

func (v *OrderValidator) validateID(id int64) error {
	verr := newValidationError()
	checkPositive(verr, FieldID, id, MsgIDNull)
	return verr.orNil()
}

func (v *OrderValidator) validateIDs(ids []int64) error {
	verr := newValidationError()
	if len(ids) == 0 {
		verr.add(FieldOrderIDs, MsgNotEmpty)
		return verr
	}

	for i, id := range ids {
		if id <= 0 {
			verr.add(fmt.Sprintf("%s[%d]", FieldOrderIDs, i), MsgPositive)
		}
	}

	return verr.orNil()
}

func checkPositive(verr *ValidationError, field string, value int64, nullMsg string) {
	switch {
	case value == 0:
		verr.add(field, nullMsg)
	case value < 0:
		verr.add(field, MsgPositive)
	}
}
