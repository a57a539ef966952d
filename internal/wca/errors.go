package wca

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates a missing or rejected access token.
	ErrUnauthorized = errors.New("wca: unauthorized")
	// ErrCompetitionNotFound indicates an unknown competition id.
	ErrCompetitionNotFound = errors.New("wca: competition not found")
)

// APIError represents an unexpected WCA API response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wca: unexpected status %d: %s", e.Status, e.Body)
}
