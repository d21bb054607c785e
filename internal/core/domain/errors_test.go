package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrInvalidPrice", ErrInvalidPrice},
		{"ErrInvalidName", ErrInvalidName},
		{"ErrInvalidDuration", ErrInvalidDuration},
		{"ErrForbidden", ErrForbidden},
		{"ErrDeclined", ErrDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestValidationError_Unwrap(t *testing.T) {
	err := &ValidationError{Field: "price", Err: ErrInvalidPrice}

	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.NotErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, "price: price must be greater than 0", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{ErrInvalidPrice, "Price must be greater than 0"},
		{ErrInvalidName, "Service name is required"},
		{ErrInvalidDuration, "Choose one of the listed durations"},
		{errors.New("other"), "x: other"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ve := &ValidationError{Field: "x", Err: tt.err}
			assert.Equal(t, tt.expected, ve.Message())
		})
	}
}

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", &ValidationError{Field: "price", Err: ErrInvalidPrice})

	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrInvalidPrice))
	assert.False(t, IsValidationError(nil))
}
