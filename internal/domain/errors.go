package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling (OCP compliance).
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is implementations so errors.Is() matches typed errors against the sentinels
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors for backwards compatibility - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConversion = errors.New("conversion failed")
)

// ConversionError represents a failed conversion attempt. The message is
// whatever the engine reported; callers treat it as opaque text.
// Implements HTTPError interface for extensible error handling
type ConversionError struct {
	Message string // Human-readable engine failure message
	Engine  string // Name of the engine that failed
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConversionError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// Is allows errors.Is() to match against ErrConversion
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
