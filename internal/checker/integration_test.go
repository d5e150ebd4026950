package checker

import (
	"context"
	"reflect"
	"testing"
	"time"

	"domainsearch/internal/models"
	"domainsearch/internal/testutil"
)

func TestCheck_Postgres(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	testutil.CreateTestSearch(t, database, "google", "google.com", now.Add(-time.Hour))
	testutil.CreateTestSearch(t, database, "stale", "stale.com", now.AddDate(0, 0, -9))

	provider := &fakeProvider{replies: map[string]lookupReply{"google.in": registered("google.in")}}
	c, err := New(database, provider, Options{Suffixes: []string{".com", ".in", ".net"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	resp, err := c.Check(ctx, "google")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if !reflect.DeepEqual(resp.Results, []bool{true, true, false}) {
		t.Errorf("Results = %v, want [true true false]", resp.Results)
	}
	wantOutcomes := []string{models.OutcomeCached, models.OutcomeRegistered, models.OutcomeUnregistered}
	if !reflect.DeepEqual(resp.Outcomes, wantOutcomes) {
		t.Errorf("Outcomes = %v, want %v", resp.Outcomes, wantOutcomes)
	}
	if !reflect.DeepEqual(provider.calls, []string{"google.in", "google.net"}) {
		t.Errorf("provider calls = %v, cached .com must not be looked up", provider.calls)
	}

	if ok, _ := database.DomainExists(ctx, "google.in"); !ok {
		t.Error("google.in was not cached")
	}
	if ok, _ := database.DomainExists(ctx, "stale.com"); ok {
		t.Error("stale.com survived the eviction pass")
	}
}
