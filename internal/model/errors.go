package model

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a valid selection matches no rows. It is never
// returned for selections that matched rows whose stats happen to be zero.
var ErrNoData = errors.New("no matching data")

// ValidationError reports an invalid selection; the query is not attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Invalid returns a *ValidationError for field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NoData wraps ErrNoData with a description of the empty selection.
func NoData(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNoData, fmt.Sprintf(format, args...))
}

// RequireDistinct validates that both selections are set and differ.
func RequireDistinct(field, a, b string) error {
	if a == "" || b == "" {
		return Invalid(field, "two selections are required")
	}
	if a == b {
		return Invalid(field, fmt.Sprintf("%q was selected twice; choose two different %s", a, field))
	}
	return nil
}
