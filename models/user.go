package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// User is the owner of an order as returned by the external user service.
// The order service never persists users; it only attaches them to responses.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	BirthDate Date   `json:"birthDate"`
}

// dateLayout is the wire format of [Date].
const dateLayout = "2006-01-02"

// Date is a calendar date without time of day, encoded in JSON as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate returns the [Date] for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes d as "YYYY-MM-DD", or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts "YYYY-MM-DD" strings and null.
func (d *Date) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be in %s format: %w", dateLayout, err)
	}
	d.Time = t
	return nil
}

// String returns d formatted as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(dateLayout)
}
