package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds surfaced by the API client. Callers branch on these with
// errors.Is/errors.As instead of poking at response payloads.
var (
	// ErrUnauthorized covers rejected credentials and rejected tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict means the resource already exists (registration).
	ErrConflict = errors.New("conflict")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork wraps transport-level failures (connection refused,
	// timeouts, DNS). The request may never have reached the server.
	ErrNetwork = errors.New("network error")
)

// APIError is a non-2xx response decoded into a fixed shape. Message is
// the server's user-facing text, when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
}

// Is maps well-known statuses onto the sentinel kinds, so
// errors.Is(err, ErrUnauthorized) works on any *APIError.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
