package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a quote request violates a pricing rule.
// It is a business-level failure; adapters map it onto their own status codes.
// Use with errors.Is().
var ErrInvalidInput = errors.New("invalid input")

// Request fields referenced by InvalidInputError.
const (
	FieldDistance = "distance_km"
	FieldSize     = "size"
	FieldFragile  = "fragile"
)

// InvalidInputError provides context for rejected quote requests.
type InvalidInputError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid input: %s (%v)", e.Message, e.Value)
	}

	return "invalid input: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInputError creates an invalid input error with context.
func NewInvalidInputError(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}

// NewInvalidInputErrorWithValue creates an invalid input error including the offending value.
func NewInvalidInputErrorWithValue(field, message string, value any) error {
	return &InvalidInputError{Field: field, Message: message, Value: value}
}

// IsInvalidInput checks if an error is an invalid input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
