package domain

import (
	"errors"
	"fmt"
)

// ErrAssetNotFound is matched by every NotFoundError
var ErrAssetNotFound = errors.New("asset not found")

// ValidationError reports a missing or invalid input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

// NewMissingFieldError creates a validation error for a required field that was not supplied
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "missing required field: " + field}
}

// NewInvalidFieldError creates a validation error for a supplied field with an unacceptable value
func NewInvalidFieldError(field string, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an unknown asset id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.ID)
}

// Unwrap lets errors.Is match ErrAssetNotFound
func (e *NotFoundError) Unwrap() error {
	return ErrAssetNotFound
}
