// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT I/O errors.
// They are infrastructure-agnostic and can be mapped by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnavailable indicates a required capability is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")
)

// UnavailableError provides context for unavailable errors.
// It is how the raster stage reports that the imaging capability was
// not loaded at startup; callers treat it as a skip, not a failure.
type UnavailableError struct {
	Capability string
	Reason     string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("capability %q unavailable: %s", e.Capability, e.Reason)
	}

	return fmt.Sprintf("capability %q unavailable", e.Capability)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(capability, reason string) error {
	return &UnavailableError{Capability: capability, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
