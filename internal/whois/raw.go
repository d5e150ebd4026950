package whois

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// RawClient queries registry WHOIS servers directly over port 43 and parses
// the free-form text response.
type RawClient struct {
	query func(domain string) (string, error)
}

// NewRawClient creates a port-43 client with the given per-query timeout.
func NewRawClient(timeout time.Duration) *RawClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client := whois.NewClient().SetTimeout(timeout)
	return &RawClient{
		query: func(domain string) (string, error) {
			return client.Whois(domain)
		},
	}
}

// Name identifies the provider in logs and metrics.
func (c *RawClient) Name() string {
	return "raw"
}

// Lookup runs the query in a goroutine so ctx cancellation is honoured.
func (c *RawClient) Lookup(ctx context.Context, domain string) (Result, error) {
	type response struct {
		text string
		err  error
	}
	ch := make(chan response, 1)
	go func() {
		text, err := c.query(domain)
		ch <- response{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return Result{}, fmt.Errorf("whois query for %s failed: %w", domain, res.err)
		}
		return parseRaw(domain, res.text)
	}
}

func parseRaw(domain, text string) (Result, error) {
	result := Result{Domain: domain}

	info, err := whoisparser.Parse(text)
	switch {
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		result.DataError = "not found"
		return result, nil
	case errors.Is(err, whoisparser.ErrReservedDomain),
		errors.Is(err, whoisparser.ErrPremiumDomain),
		errors.Is(err, whoisparser.ErrBlockedDomain):
		// Not available for registration, so treat as taken.
		result.Registered = true
		return result, nil
	case err != nil:
		return Result{}, fmt.Errorf("failed to parse whois response for %s: %w", domain, err)
	}

	result.Registered = true
	if info.Domain != nil {
		result.CreatedDate = info.Domain.CreatedDate
		result.ExpiresDate = info.Domain.ExpirationDate
	}
	if info.Registrar != nil {
		result.Registrar = info.Registrar.Name
	}
	return result, nil
}
