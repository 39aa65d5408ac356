package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found, or was not
	// reachable through the parent named by the request.
	ErrNotFound = errors.New("not found")

	// ErrValidationFailed indicates that validation checks have failed.
	// Every *ValidationError unwraps to it.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
