// Package errors provides custom error types and error handling utilities.
package errors

import (
	"fmt"
	"net/http"
)

// Error codes.
const (
	// Local errors.
	CodeValidation  = "VALIDATION_ERROR"
	CodeFileMissing = "FILE_MISSING"
	CodeConnection  = "CONNECTION_ERROR"
	CodeBadResponse = "BAD_RESPONSE"

	// Errors reported by the API.
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodePayloadTooBig  = "PAYLOAD_TOO_LARGE"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
	CodeTimeout        = "TIMEOUT"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError represents an application error with code and details.
type AppError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError.
func Wrap(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// WithDetail adds a single detail to the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Convenience constructors.

// ValidationError creates a validation error.
func ValidationError(message string) *AppError {
	return New(CodeValidation, message)
}

// FileMissingError creates an error for a local file that does not exist.
func FileMissingError(path string) *AppError {
	return New(CodeFileMissing, fmt.Sprintf("file not found: %s", path)).
		WithDetail("path", path)
}

// ConnectionError creates an error for a failed network request.
func ConnectionError(err error) *AppError {
	return Wrap(CodeConnection, "request failed", err)
}

// BadResponseError creates an error for an unparseable API response.
func BadResponseError(err error) *AppError {
	return Wrap(CodeBadResponse, "malformed response", err)
}

// CodeForStatus returns an error code for common HTTP status codes.
// It is used to classify API errors whose bodies carry no structured
// error payload.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusRequestEntityTooLarge:
		return CodePayloadTooBig
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusGatewayTimeout:
		return CodeTimeout
	default:
		return CodeInternal
	}
}

// IsNotFound checks if error is a not found error.
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsValidation checks if error is a validation error.
func IsValidation(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeValidation
	}
	return false
}

// IsUnauthorized checks if error is an authorization error.
func IsUnauthorized(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeUnauthorized || appErr.Code == CodeForbidden
	}
	return false
}
