package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   Status
		wantOK bool
	}{
		{"PENDING", StatusPending, true},
		{"success", StatusSuccess, true},
		{" Failed ", StatusFailed, true},
		{"CANCELLED", StatusCancelled, true},
		{"SHIPPED", Status("SHIPPED"), false},
		{"", Status(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, Status("pending").IsValid(), "statuses are stored upper-case")
	assert.Equal(t, "SUCCESS", StatusSuccess.String())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "orders", Order{}.TableName())
	assert.Equal(t, "order_items", OrderItem{}.TableName())
	assert.Equal(t, "items", Item{}.TableName())
}
