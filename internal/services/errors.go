// file: internal/services/errors.go
package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ===============================
// SERVICE ERROR TYPES
// ===============================

// ErrorType categorizes service errors for HTTP status mapping.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypeConflict    ErrorType = "CONFLICT"
	ErrorTypeBusiness    ErrorType = "BUSINESS_ERROR"
	ErrorTypeInternal    ErrorType = "INTERNAL_ERROR"
	ErrorTypeUnavailable ErrorType = "SERVICE_UNAVAILABLE"
	ErrorTypeRateLimit   ErrorType = "RATE_LIMIT_EXCEEDED"
)

// ServiceError is the error type returned by the service layer. It
// carries the machine-readable code and HTTP status the response
// builder needs.
type ServiceError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code"`
	StatusCode int                    `json:"status_code"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap supports error unwrapping
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// WithDetails attaches structured details to the error
func (e *ServiceError) WithDetails(details map[string]interface{}) *ServiceError {
	e.Details = details
	return e
}

// WithCause attaches the underlying error
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.Cause = cause
	return e
}

// ===============================
// ERROR CONSTRUCTORS
// ===============================

// NewValidationError creates a validation error (400)
func NewValidationError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Code:       "VALIDATION_FAILED",
		StatusCode: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error (404)
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		Code:       "RESOURCE_NOT_FOUND",
		StatusCode: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error (409)
func NewConflictError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeConflict,
		Message:    message,
		Code:       "RESOURCE_CONFLICT",
		StatusCode: http.StatusConflict,
	}
}

// NewBusinessError creates a business rule violation error (422)
func NewBusinessError(message string, code string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeBusiness,
		Message:    message,
		Code:       code,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewInternalError creates an internal server error (500)
func NewInternalError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeInternal,
		Message:    message,
		Code:       "INTERNAL_ERROR",
		StatusCode: http.StatusInternalServerError,
	}
}

// NewServiceUnavailableError creates a service unavailable error (503)
func NewServiceUnavailableError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeUnavailable,
		Message:    message,
		Code:       "SERVICE_UNAVAILABLE",
		StatusCode: http.StatusServiceUnavailable,
	}
}

// NewRateLimitError creates a rate limit error (429)
func NewRateLimitError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeRateLimit,
		Message:    message,
		Code:       "RATE_LIMIT_EXCEEDED",
		StatusCode: http.StatusTooManyRequests,
	}
}

// ===============================
// ERROR INSPECTION HELPERS
// ===============================

// GetServiceError extracts a ServiceError from an error chain
func GetServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsErrorType checks whether err carries the given error type
func IsErrorType(err error, errorType ErrorType) bool {
	if svcErr, ok := GetServiceError(err); ok {
		return svcErr.Type == errorType
	}
	return false
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if error is a not found error
func IsNotFoundError(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsConflictError checks if error is a conflict error
func IsConflictError(err error) bool {
	return IsErrorType(err, ErrorTypeConflict)
}

// GetStatusCode returns the HTTP status for an error, 500 by default
func GetStatusCode(err error) int {
	if svcErr, ok := GetServiceError(err); ok {
		return svcErr.StatusCode
	}
	return http.StatusInternalServerError
}
