// Package dto holds the JSON shapes of the HTTP API and their mapping to models.
package dto

import (
	"dealTracker/internal/models"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date that travels as "YYYY-MM-DD". Full RFC 3339
// timestamps are accepted on input and truncated to their UTC day.
type Date time.Time

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := models.ParseDate(s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return fmt.Errorf("date %q is not in %s format", s, models.DateLayout)
		}
		t = models.DateOf(ts.UTC())
	}
	*d = Date(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(models.FormatDate(time.Time(d)))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

// FieldError describes a request that is well formed JSON but misses or
// misuses a field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string) *FieldError {
	return &FieldError{Field: field, Reason: "field is required"}
}

// notNull unwraps an update field of a non-nullable column: absent gives nil,
// an explicit null is a FieldError.
func notNull[T any](field string, n models.Nullable[T]) (*T, error) {
	if !n.Set {
		return nil, nil
	}
	if n.Value == nil {
		return nil, &FieldError{Field: field, Reason: "must not be null"}
	}
	return n.Value, nil
}

func notNullDate(field string, n models.Nullable[Date]) (*time.Time, error) {
	d, err := notNull(field, n)
	if err != nil || d == nil {
		return nil, err
	}
	t := d.Time()
	return &t, nil
}
