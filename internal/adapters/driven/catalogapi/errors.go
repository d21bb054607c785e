package catalogapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// StatusError is a non-2xx response from the catalog server.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	// Message is the server's error text, if it sent one.
	Message   string
	RequestID string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog api: %s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("catalog api: %s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, domain.ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsServerError reports a 5xx response.
func IsServerError(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return false
}
