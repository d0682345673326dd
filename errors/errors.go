package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the TDX API
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("TDX API error (%d): %s - %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("TDX API error (%d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message, code, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
		Details:    details,
	}
}

// Common error types
var (
	// ErrUnauthorized represents a 401 Unauthorized error
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
		Code:       "UNAUTHORIZED",
	}

	// ErrForbidden represents a 403 Forbidden error
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Forbidden",
		Code:       "FORBIDDEN",
	}

	// ErrNotFound represents a 404 Not Found error
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Resource not found",
		Code:       "NOT_FOUND",
	}

	// ErrBadRequest represents a 400 Bad Request error
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Bad request",
		Code:       "BAD_REQUEST",
	}

	// ErrInternalServer represents a 500 Internal Server Error
	ErrInternalServer = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
		Code:       "INTERNAL_SERVER_ERROR",
	}

	// ErrRateLimited represents a 429 Too Many Requests error
	ErrRateLimited = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "Rate limit exceeded",
		Code:       "RATE_LIMITED",
	}
)

// IsAPIError checks if an error is an API error anywhere in its chain
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if an error is a forbidden error
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// NetworkError represents a transport-level failure: the request never
// produced a usable response
type NetworkError struct {
	Operation string `json:"operation"`
	URL       string `json:"url"`
	Err       error  `json:"error"`
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s to %s: %v", e.Operation, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ConfigError represents a client configuration error
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Message)
}
