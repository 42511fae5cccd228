package github

import (
	"errors"
	"fmt"
)

// ErrNoToken indicates the client was asked to call the API without a
// configured bearer token.
var ErrNoToken = errors.New("no github token configured")

// ErrNoUser indicates a user-scoped call was made without a configured
// username.
var ErrNoUser = errors.New("no github username configured")

// APIError is a non-2xx response from the GitHub API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is GitHub's human-readable error message, when present.
	Message string

	// URL is the request URL that failed.
	URL string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github: %s (HTTP %d for %s)", e.Message, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("github: HTTP %d for %s", e.StatusCode, e.URL)
}
