package models

// OrderResponse is the API representation of an [Order].
//
// User is filled from the external user service on a best-effort basis:
// when the lookup fails the field is omitted and the order is still returned.
type OrderResponse struct {
	ID         int64              `json:"id"`
	UserID     int64              `json:"userId"`
	Status     Status             `json:"status"`
	OrderItems []OrderItemRequest `json:"orderItems"`
	User       *User              `json:"user,omitempty"`
}
