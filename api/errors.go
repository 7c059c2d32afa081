package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a rejection from the remote service. The message is the
// server's own and is surfaced to the caller as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service returned status %d", e.Status)
	}
	return e.Message
}

// IsUnauthorized reports whether err is a 401 rejection, meaning the
// session token is missing, expired, or revoked.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 rejection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
