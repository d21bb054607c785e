package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidPrice indicates a service price that is not strictly positive.
	ErrInvalidPrice = errors.New("price must be greater than 0")

	// ErrInvalidName indicates an empty service name.
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidDuration indicates a duration outside the allowed options.
	ErrInvalidDuration = errors.New("duration is not an allowed option")

	// ErrForbidden indicates the user lacks the capability for the operation.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrDeclined indicates the user declined a confirmation prompt.
	ErrDeclined = errors.New("declined by user")
)

// ValidationError is a client-side rejection of form input.
// It never reaches the network and the form keeps its values.
type ValidationError struct {
	// Field is the form field that failed ("name", "price", "time").
	Field string

	// Err is the underlying sentinel (ErrInvalidPrice, ErrInvalidName...).
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing alert text.
func (e *ValidationError) Message() string {
	switch {
	case errors.Is(e.Err, ErrInvalidPrice):
		return "Price must be greater than 0"
	case errors.Is(e.Err, ErrInvalidName):
		return "Service name is required"
	case errors.Is(e.Err, ErrInvalidDuration):
		return "Choose one of the listed durations"
	default:
		return e.Error()
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
