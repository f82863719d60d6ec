// Package apperror defines a centralized system for application-specific errors.
// This approach promotes consistent error handling and reporting across the
// application: every store reports failures through the same small taxonomy,
// so callers (the CLI layer, tests) can branch on the kind of failure without
// string-matching messages.
package apperror

import (
	"errors"
	"fmt"
)

// ErrorType is an enumeration (using `iota`) for different categories of application errors.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// StorageError represents an error originating from the local persistence layer
	StorageError
	// CorruptDataError represents persisted data that could not be decoded.
	// These are recovered automatically by the persistence adapter and are
	// never surfaced to the end user; the type exists for diagnostics.
	CorruptDataError
	// ConfigError represents an error related to application configuration
	ConfigError
	// AuthError represents an authentication failure (e.g. unknown login email)
	AuthError
	// NotFoundError represents a resource not found error
	NotFoundError
	// ValidationError represents an input validation error
	ValidationError
	// InternalError represents a generic internal error
	InternalError
	// ConflictError represents a conflict, e.g., resource already exists
	ConflictError
)

// AppError is a custom error type for the application.
// It embeds the standard `error` interface implicitly by having an `Error()` method.
// It also allows wrapping an underlying error (`Err`) for more detailed debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error returns the string representation of the error, satisfying the `error` interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		// If there's an underlying error, include its message.
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error. This is part of Go's error wrapping
// convention, allowing `errors.Is` and `errors.As` to inspect the chain of
// wrapped errors.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError. This is a generic constructor.
// It's useful for creating errors with types not covered by specific constructors
// or when the error type is determined dynamically.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// Constructor functions for specific error types.
// These provide a more readable and type-safe way to create common `AppError` types.
// For example, `NewStorageError("message", err)` is clearer than
// `NewAppError(StorageError, "message", err)`.

// NewStorageError creates a new StorageError
func NewStorageError(message string, underlyingError error) *AppError {
	return NewAppError(StorageError, message, underlyingError)
}

// NewCorruptDataError creates a new CorruptDataError
func NewCorruptDataError(message string, underlyingError error) *AppError {
	return NewAppError(CorruptDataError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError (for authentication failures)
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	ae, ok := err.(*AppError)
	return ae, ok
}

// Helper functions to check error types.
// These functions use `errors.As` to check if an error in a chain is of a
// specific `AppError` type. This is more robust than direct type assertion
// (`err.(*AppError)`) when errors might be wrapped.

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError (authentication problem)
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError checks if an error is a Conflict error
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}

// IsStorageError checks if an error is a Storage error
func IsStorageError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == StorageError
}

// IsCorruptDataError checks if an error is a CorruptData error
func IsCorruptDataError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == CorruptDataError
}
