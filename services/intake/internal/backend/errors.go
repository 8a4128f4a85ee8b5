package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is any failure talking to the backend. For non-2xx responses
// Status carries the HTTP status and Message the server-supplied message
// (or a generic one when the body had none). For transport and decode
// failures Status is zero and Err carries the cause.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("api request failed: %v", e.Err)
	}
	return fmt.Sprintf("HTTP error, status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an APIError for a missing resource.
// The backend signals this only through the status code, there is no
// separate wire marker.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
