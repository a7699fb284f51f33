package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned on duplicate or invalid data.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStorageUnavailable is returned on a transient storage failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrAuthFailure is returned on bad credentials. The message never says
	// whether the username or the password was wrong.
	ErrAuthFailure = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when a session is required but absent.
	ErrUnauthenticated = errors.New("authentication required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500 so nothing internal leaks to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrConstraintViolation):
		return NewHTTPError(http.StatusConflict, ErrConstraintViolation.Error(), "CONSTRAINT_VIOLATION")
	case errors.Is(err, ErrAuthFailure):
		return NewHTTPError(http.StatusUnauthorized, ErrAuthFailure.Error(), "AUTH_FAILURE")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrStorageUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, "service temporarily unavailable", "STORAGE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
