package api

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents an error status from the API, either from the HTTP
// status line or from the statusCode field of the response body.
type HTTPError struct {
	StatusCode int
	Message    string
	// Raw is set when the body was not a backend JSON response, for example
	// an HTML page from a proxy.
	Raw bool
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Unavailable reports whether the error came from something between the
// client and the backend rather than from the backend itself
func (e *HTTPError) Unavailable() bool {
	switch e.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return e.Raw
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsUnauthorized reports whether the API rejected the credentials or token
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}
