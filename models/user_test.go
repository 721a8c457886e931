package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	user := User{ID: 1, Name: "Ivan", BirthDate: NewDate(1990, time.May, 17)}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"birthDate":"1990-05-17"`)

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, user.BirthDate.Equal(decoded.BirthDate.Time))
	assert.Equal(t, "1990-05-17", decoded.BirthDate.String())
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantZero bool
	}{
		{name: "valid", input: `"2001-12-31"`},
		{name: "null", input: `null`, wantZero: true},
		{name: "empty string", input: `""`, wantZero: true},
		{name: "wrong layout", input: `"31.12.2001"`, wantErr: true},
		{name: "not a string", input: `20011231`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantZero, d.IsZero())
		})
	}
}

func TestDate_MarshalZero(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestOrderResponse_UserOmittedWhenMissing(t *testing.T) {
	data, err := json.Marshal(OrderResponse{ID: 1, UserID: 2, Status: StatusSuccess, OrderItems: []OrderItemRequest{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"userId":2,"status":"SUCCESS","orderItems":[]}`, string(data))
}
