// Package whois looks up domain registration data from remote WHOIS sources.
package whois

import (
	"context"
	"fmt"
)

// Result is the outcome of one successful lookup. Registered is false when
// the source had no record for the domain or flagged a data error.
type Result struct {
	Domain      string
	Registered  bool
	Registrar   string
	CreatedDate string
	ExpiresDate string
	DataError   string
}

// Provider performs a single blocking WHOIS lookup.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, domain string) (Result, error)
}

// StatusError is returned when the remote endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("whois endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// APIError carries an error object reported inside a 2xx response body.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whois api error %s: %s", e.Code, e.Message)
}

// NewProvider builds the provider selected by name ("xmlapi" or "raw").
func NewProvider(name string, cfg XMLAPIConfig) (Provider, error) {
	switch name {
	case "", "xmlapi":
		return NewXMLAPIClient(cfg), nil
	case "raw":
		return NewRawClient(cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown whois provider %q", name)
	}
}
