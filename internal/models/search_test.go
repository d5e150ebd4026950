package models

import (
	"testing"
	"time"
)

func TestCalendarDaysBetween(t *testing.T) {
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same instant", base, base, 0},
		{"same day different hours", time.Date(2026, 10, 18, 0, 1, 0, 0, time.UTC), time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), 0},
		{"one minute across midnight", time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), 1},
		{"seven days", base.AddDate(0, 0, -7), base, 7},
		{"just under eight days", base.AddDate(0, 0, -8).Add(23 * time.Hour), base, 7},
		{"across month", time.Date(2026, 9, 28, 8, 0, 0, 0, time.UTC), time.Date(2026, 10, 6, 7, 0, 0, 0, time.UTC), 8},
		{"non UTC input", time.Date(2026, 10, 18, 1, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)), base, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalendarDaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("CalendarDaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvictionCutoff(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)
	cutoff := EvictionCutoff(now, 7)

	want := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
	if !cutoff.Equal(want) {
		t.Fatalf("EvictionCutoff() = %v, want %v", cutoff, want)
	}

	// A record is evicted iff it was created before the cutoff, which must
	// agree with an age of more than seven calendar days.
	samples := []time.Time{
		time.Date(2026, 10, 10, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 11, 22, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
		now,
	}
	for _, created := range samples {
		rec := &SearchRecord{CreatedAt: created}
		evicted := created.Before(cutoff)
		if old := rec.AgeInDays(now) > 7; old != evicted {
			t.Errorf("created %v: age %d days, evicted=%v", created, rec.AgeInDays(now), evicted)
		}
	}
}

func TestCheckResponseLegacy(t *testing.T) {
	var r CheckResponse
	if r.Legacy().X {
		t.Error("empty response should have x=false")
	}

	r.Append("google.com", true, OutcomeCached)
	r.Append("google.in", false, OutcomeError)
	legacy := r.Legacy()
	if legacy.X {
		t.Error("x should follow the last result")
	}
	if len(legacy.Domains) != 2 {
		t.Errorf("legacy domains = %v", legacy.Domains)
	}
	if len(r.Domains) != len(r.Results) || len(r.Results) != len(r.Outcomes) {
		t.Errorf("mismatched lengths: %d %d %d", len(r.Domains), len(r.Results), len(r.Outcomes))
	}
}
