// Package errors provides structured error handling for the application
// with stable error codes and HTTP status mapping.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a stable application error code.
type ErrorCode string

const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeSourceError        ErrorCode = "SOURCE_ERROR"
	CodeCacheError         ErrorCode = "CACHE_ERROR"

	// Business errors
	CodeFrameworkNotFound  ErrorCode = "FRAMEWORK_NOT_FOUND"
	CodeIngredientNotFound ErrorCode = "INGREDIENT_NOT_FOUND"
	CodeCatalogEmpty       ErrorCode = "CATALOG_EMPTY"
)

// AppError represents an application error with structured information.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound, CodeFrameworkNotFound, CodeIngredientNotFound:
		return http.StatusNotFound
	case CodeServiceUnavailable, CodeCatalogEmpty:
		return http.StatusServiceUnavailable
	case CodeSourceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error.
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new application error.
func New(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewBadRequestError creates a bad request error.
func NewBadRequestError(message string) *AppError {
	return New(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error.
func NewValidationError(details string) *AppError {
	return New(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal server error.
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return New(CodeInternal, message, "")
}

// NewSourceError creates an error for a failed content-source operation.
func NewSourceError(operation string, cause error) *AppError {
	return New(
		CodeSourceError,
		"Content source error",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewCacheError creates an error for a failed cache operation.
func NewCacheError(operation string, cause error) *AppError {
	return New(
		CodeCacheError,
		"Cache operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewFrameworkNotFoundError creates a framework not found error. Lookups
// by an empty slug (titleless source records) land here too: that is a
// data-quality condition surfaced as not-found, never a crash.
func NewFrameworkNotFoundError(key string) *AppError {
	return New(
		CodeFrameworkNotFound,
		"Framework not found",
		fmt.Sprintf("No framework matches %q", key),
	).WithMetadata("key", key)
}

// NewIngredientNotFoundError creates an ingredient not found error.
func NewIngredientNotFoundError(id string) *AppError {
	return New(
		CodeIngredientNotFound,
		"Ingredient not found",
		fmt.Sprintf("Ingredient with id %s does not exist", id),
	).WithMetadata("ingredient_id", id)
}

// NewCatalogEmptyError signals that no catalog has been loaded yet.
func NewCatalogEmptyError() *AppError {
	return New(
		CodeCatalogEmpty,
		"Catalog not loaded",
		"No content fetch has completed yet",
	)
}

// Wrap wraps an error as an internal error if it's not already an AppError.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// Is checks if an error carries a specific error code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse represents an API error response body.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses.
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ToErrorResponse converts an AppError to an API error response.
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
		},
	}
}
