package errors

import (
	"net/http"

	"breachcheck/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details.
// errors.Is still matches the original through Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"Missing required fields: name, phone, or password",
		"",
	)

	ErrInvalidBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"Invalid request body",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// AuditWriteError reports that the audit record could not be persisted.
// The audit trail is required, so this always maps to a 500.
type AuditWriteError struct {
	err error
}

// NewAuditWriteError wraps the store failure.
func NewAuditWriteError(err error) AppError {
	return &AuditWriteError{err: err}
}

// Error implements the error interface
func (e *AuditWriteError) Error() string {
	return errors.Wrap(e.err, "audit write failed").Error()
}

// Unwrap exposes the store failure.
func (e *AuditWriteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *AuditWriteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *AuditWriteError) ErrorCode() string {
	return "AUDIT_WRITE_FAILED"
}

// Message carries the cause text; the caller sees a message string and nothing else.
func (e *AuditWriteError) Message() string {
	return "Internal server error: " + e.Error()
}

// Details returns detailed error information
func (e *AuditWriteError) Details() string {
	return ""
}
