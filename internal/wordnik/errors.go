package wordnik

import (
	"errors"
	"fmt"
)

// Error categories. Use errors.Is to test an error returned by the client.
var (
	ErrInvalidAPIKey    = errors.New("wordnik: missing api key")
	ErrInvalidAuthToken = errors.New("wordnik: this method requires a valid auth token")
	ErrAccessDenied     = errors.New("wordnik: access denied, check username, password and api key")
	ErrServer           = errors.New("wordnik: server error")
	ErrNotFound         = errors.New("wordnik: not found")
)

// APIError describes a failed API response. It matches ErrServer or
// ErrNotFound through errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// errorForStatus maps status >= 500 to ErrServer and 400-499 to ErrNotFound.
// Other statuses pass through as nil.
func errorForStatus(status int, message string) error {
	switch {
	case status > 499:
		return &APIError{StatusCode: status, Message: message, Kind: ErrServer}
	case status > 399:
		return &APIError{StatusCode: status, Message: message, Kind: ErrNotFound}
	default:
		return nil
	}
}
