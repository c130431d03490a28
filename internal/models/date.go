package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// Date is an optional calendar date. The zero value is "no date" and maps to SQL NULL and JSON null.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// DateOf drops the time of day and location of t, keeping its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String returns the date in DateLayout, or an empty string when the date is not set.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(DateLayout))
}

// inputLayouts are accepted when a typed date arrives in a request body.
var inputLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}

	for _, layout := range inputLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*d = DateOf(parsed)
			return nil
		}
	}

	return fmt.Errorf("invalid date %q, expected %s", raw, DateLayout)
}

// Scan implements sql.Scanner so DATE columns can be read directly into a Date.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(value)
	case Date:
		*d = value
	case string:
		parsed, err := time.Parse(DateLayout, value)
		if err != nil {
			return fmt.Errorf("failed to scan date %q: %w", value, err)
		}
		*d = DateOf(parsed)
	default:
		return fmt.Errorf("failed to scan date: unsupported type %T", src)
	}

	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time, nil
}
