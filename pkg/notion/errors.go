package notion

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when no API key is configured.
	ErrMissingKey = errors.New("missing API key")

	// ErrInvalidRequest is returned when a request is rejected locally before
	// being sent.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotImplemented is returned by endpoints the client does not support.
	ErrNotImplemented = errors.New("not implemented")
)

// APIError is the error object the API returns with non-2xx responses.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion API error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("notion API error (status %d, %s): %s", e.Status, e.Code, e.Message)
}

func invalidRequest(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidRequest, fmt.Sprintf(format, args...))
}
