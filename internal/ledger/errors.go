package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue       = errors.New("invalid check-in value")
	ErrInvalidHabit       = errors.New("invalid habit")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrHabitNotFound      = errors.New("habit not found")
)

// ValidationError describes rejected input. Err is one of the sentinel errors
// above so callers can test the category with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(sentinel error, field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Err: sentinel}
}
