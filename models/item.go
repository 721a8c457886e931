package models

import "github.com/shopspring/decimal"

// Item is a catalog entry that can be referenced by order items.
type Item struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
