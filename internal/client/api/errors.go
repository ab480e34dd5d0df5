package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for 401 responses that could not be
	// recovered by a token refresh. The CLI renders it as a re-login
	// affordance, distinct from other failures.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries the server message of a 422 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// APIError is any other non-2xx response. Message is the server-provided
// error or message field, or a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}
