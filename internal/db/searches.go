package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"domainsearch/internal/models"
)

// searchColumns is the standard column list for search queries.
const searchColumns = `id, search_text, domain_name, created_at`

// scanSearches scans multiple rows into a slice of SearchRecords.
func scanSearches(rows pgx.Rows) ([]models.SearchRecord, error) {
	defer rows.Close()

	var searches []models.SearchRecord
	for rows.Next() {
		var s models.SearchRecord
		if err := rows.Scan(&s.ID, &s.SearchText, &s.DomainName, &s.CreatedAt); err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// DomainExists reports whether at least one cached record matches domain exactly.
func (d *DB) DomainExists(ctx context.Context, domain string) (bool, error) {
	var exists bool
	err := d.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM searches WHERE domain_name = $1)`,
		domain,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", domain, err)
	}
	return exists, nil
}

// CreateSearch inserts a new cached record and returns it with ID and CreatedAt set.
// Duplicate domain names are allowed.
func (d *DB) CreateSearch(ctx context.Context, searchText, domain string) (*models.SearchRecord, error) {
	if searchText == "" || domain == "" {
		return nil, ErrInvalidSearch
	}

	s := &models.SearchRecord{SearchText: searchText, DomainName: domain}
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO searches (search_text, domain_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, searchText, domain).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create search for %s: %w", domain, err)
	}
	return s, nil
}

// GetSearchesByDomain returns all cached records for domain, newest first.
func (d *DB) GetSearchesByDomain(ctx context.Context, domain string) ([]models.SearchRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+searchColumns+`
		FROM searches
		WHERE domain_name = $1
		ORDER BY created_at DESC
	`, domain)
	if err != nil {
		return nil, err
	}

	searches, err := scanSearches(rows)
	if err != nil {
		return nil, err
	}
	if len(searches) == 0 {
		return nil, ErrSearchNotFound
	}
	return searches, nil
}

// ListRecentSearches returns the most recently created records.
func (d *DB) ListRecentSearches(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT `+searchColumns+`
		FROM searches
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanSearches(rows)
}

// CountSearches returns the number of cached records.
func (d *DB) CountSearches(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM searches`).Scan(&count)
	return count, err
}

// DeleteSearchesOlderThan removes every record created before cutoff and
// returns the number of rows deleted.
func (d *DB) DeleteSearchesOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM searches WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to evict searches: %w", err)
	}
	return tag.RowsAffected(), nil
}
