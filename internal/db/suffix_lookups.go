package db

import (
	"context"

	"domainsearch/internal/models"
)

// IncrementSuffixLookup upserts the check count for a suffix and outcome.
func (d *DB) IncrementSuffixLookup(ctx context.Context, suffix, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO suffix_lookups (suffix, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (suffix, outcome) DO UPDATE
		SET count = suffix_lookups.count + 1, last_seen_at = NOW()
	`, suffix, outcome)
	return err
}

// GetAllSuffixLookups returns every suffix lookup row, ordered for stable export.
func (d *DB) GetAllSuffixLookups(ctx context.Context) ([]models.SuffixLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT suffix, outcome, count, last_seen_at
		FROM suffix_lookups
		ORDER BY suffix, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.SuffixLookup
	for rows.Next() {
		var l models.SuffixLookup
		if err := rows.Scan(&l.Suffix, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
