package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecord is a cached, confirmed-registered domain lookup.
// Its presence means the remote WHOIS service reported DomainName as
// registered at CreatedAt.
type SearchRecord struct {
	ID         uuid.UUID `json:"id"`
	SearchText string    `json:"search_text"`
	DomainName string    `json:"domain_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// AgeInDays returns the calendar-day difference between the record's
// creation date and now, both taken in UTC.
func (s *SearchRecord) AgeInDays(now time.Time) int {
	return CalendarDaysBetween(s.CreatedAt, now)
}

// CalendarDaysBetween counts whole calendar days from a to b in UTC,
// ignoring the time of day.
func CalendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// EvictionCutoff returns the start of the UTC day retentionDays before now.
// Records created strictly before the cutoff are older than retentionDays
// calendar days.
func EvictionCutoff(now time.Time, retentionDays int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)
}
