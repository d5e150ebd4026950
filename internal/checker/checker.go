// Package checker implements the domain-availability check-and-cache workflow.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"domainsearch/internal/metrics"
	"domainsearch/internal/models"
	"domainsearch/internal/validation"
	"domainsearch/internal/whois"
)

// ErrInvalidName is returned when the search text is not a usable base name.
var ErrInvalidName = errors.New("invalid search text")

// Store is the persistent cache of confirmed-registered domains.
type Store interface {
	DomainExists(ctx context.Context, domain string) (bool, error)
	CreateSearch(ctx context.Context, searchText, domain string) (*models.SearchRecord, error)
	DeleteSearchesOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Options configures a Checker.
type Options struct {
	Suffixes      []string
	RetentionDays int              // default 7
	Now           func() time.Time // default time.Now
}

// Checker expands a base name against a suffix list, consults the cache and
// falls back to a remote WHOIS lookup for each candidate.
type Checker struct {
	store         Store
	provider      whois.Provider
	suffixes      []string
	retentionDays int
	now           func() time.Time
}

// New creates a checker. Every suffix must be dot-prefixed and lowercase.
func New(store Store, provider whois.Provider, opts Options) (*Checker, error) {
	if len(opts.Suffixes) == 0 {
		return nil, errors.New("at least one suffix is required")
	}
	for _, s := range opts.Suffixes {
		if !validation.ValidateSuffix(s) {
			return nil, fmt.Errorf("invalid suffix %q", s)
		}
	}
	if opts.RetentionDays <= 0 {
		opts.RetentionDays = 7
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Checker{
		store:         store,
		provider:      provider,
		suffixes:      append([]string(nil), opts.Suffixes...),
		retentionDays: opts.RetentionDays,
		now:           opts.Now,
	}, nil
}

// Suffixes returns a copy of the configured suffix list.
func (c *Checker) Suffixes() []string {
	return append([]string(nil), c.suffixes...)
}

// Check runs the workflow for searchText and then performs an eviction pass.
// A failed remote lookup marks only that candidate false; store errors abort.
func (c *Checker) Check(ctx context.Context, searchText string) (*models.CheckResponse, error) {
	base := validation.NormalizeBaseName(searchText)
	if ok, msg := validation.ValidateBaseName(base); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidName, msg)
	}

	resp := &models.CheckResponse{
		Domains:  make([]string, 0, len(c.suffixes)),
		Results:  make([]bool, 0, len(c.suffixes)),
		Outcomes: make([]string, 0, len(c.suffixes)),
	}

	for _, suffix := range c.suffixes {
		candidate := base + suffix

		outcome, err := c.checkCandidate(ctx, searchText, candidate)
		if err != nil {
			return nil, err
		}

		metrics.RecordCheck(suffix, outcome)
		resp.Append(candidate, outcome == models.OutcomeCached || outcome == models.OutcomeRegistered, outcome)
	}

	if _, err := c.Evict(ctx); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Checker) checkCandidate(ctx context.Context, searchText, candidate string) (string, error) {
	cached, err := c.store.DomainExists(ctx, candidate)
	if err != nil {
		return "", err
	}
	if cached {
		return models.OutcomeCached, nil
	}

	start := time.Now()
	result, err := c.provider.Lookup(ctx, candidate)
	metrics.RecordLookup(c.provider.Name(), err == nil, time.Since(start))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		slog.Warn("whois lookup failed", "domain", candidate, "provider", c.provider.Name(), "error", err)
		return models.OutcomeError, nil
	}

	if !result.Registered {
		slog.Debug("whois lookup found no record", "domain", candidate, "data_error", result.DataError)
		return models.OutcomeUnregistered, nil
	}

	if _, err := c.store.CreateSearch(ctx, searchText, candidate); err != nil {
		return "", err
	}
	slog.Debug("cached registered domain", "domain", candidate, "registrar", result.Registrar)
	return models.OutcomeRegistered, nil
}

// Evict deletes every record older than the retention period, measured in
// whole UTC calendar days.
func (c *Checker) Evict(ctx context.Context) (int64, error) {
	cutoff := models.EvictionCutoff(c.now(), c.retentionDays)

	deleted, err := c.store.DeleteSearchesOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	metrics.RecordEviction(deleted)
	if deleted > 0 {
		slog.Info("evicted stale search records", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}
