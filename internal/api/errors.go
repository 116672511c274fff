package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned for HTTP 401. Callers must drop the stored
// credentials and send the user back to the login page.
var ErrUnauthorized = errors.New("api: unauthorized")

// APIError is a non-2xx answer carrying the server's explanation.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
}

// NetworkError wraps transport failures: DNS, refused connections, timeouts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Message turns any client error into text fit for the user.
func Message(err error, fallback string) string {
	var apiErr *APIError
	var netErr *NetworkError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "Sesi tidak valid di server. Silakan login ulang."
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	case errors.As(err, &netErr):
		return "Gagal terhubung ke server."
	default:
		return fallback
	}
}
