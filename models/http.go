package models

// OrderItemRequest is a single position in a create or update request.
// It is also the shape in which positions are echoed back in [OrderResponse].
type OrderItemRequest struct {
	// ItemID references an existing catalog item. Required, positive.
	ItemID int64 `json:"itemId"`

	// Quantity is the number of units ordered. Required, positive.
	Quantity int `json:"quantity"`
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	// UserID is the owner of the new order. Required, positive.
	UserID int64 `json:"userId"`

	// OrderItems must contain at least one position.
	OrderItems []OrderItemRequest `json:"orderItems"`
}

// UpdateOrderRequest is the body of PUT /orders/{id}.
// The given positions fully replace the existing ones.
type UpdateOrderRequest struct {
	OrderItems []OrderItemRequest `json:"orderItems"`
}
