// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an order.
// Values are stored in the "orders.status" column as upper-case text.
type Status string

const (
	// StatusPending marks an order that was accepted but not processed yet.
	StatusPending Status = "PENDING"

	// StatusSuccess marks an order whose items were all resolved and saved.
	StatusSuccess Status = "SUCCESS"

	// StatusFailed marks an order that could not be processed.
	StatusFailed Status = "FAILED"

	// StatusCancelled marks an order cancelled before processing.
	StatusCancelled Status = "CANCELLED"
)

var allStatuses = []Status{StatusPending, StatusSuccess, StatusFailed, StatusCancelled}

// IsValid reports whether s is one of the known order statuses.
func (s Status) IsValid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw (case-insensitive) into a [Status].
// The second return value is false when raw is not a known status.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// Order is the persisted order aggregate. It owns its [OrderItem] rows:
// saving an order replaces its items, deleting it removes them.
type Order struct {
	// ID is the database-assigned identifier. Zero means "not saved yet".
	ID int64 `json:"id"`

	// UserID references the owner in the external user service.
	UserID int64 `json:"user_id"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// OrderItems are the ordered positions.
	OrderItems []OrderItem `json:"order_items"`

	// CreationDate is set by the database on insert.
	CreationDate time.Time `json:"creation_date"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}

// OrderItem is a single position of an order: an item and its quantity.
type OrderItem struct {
	ID       int64 `json:"id"`
	OrderID  int64 `json:"order_id"`
	Item     Item  `json:"item"`
	Quantity int   `json:"quantity"`
}

// TableName returns the name of the database table
// associated with the OrderItem model.
func (o OrderItem) TableName() string {
	return "order_items"
}
