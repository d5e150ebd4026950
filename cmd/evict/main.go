// Command evict runs a single eviction pass over the search cache and exits.
// It is intended for cron when the server's background job is disabled.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"domainsearch/internal/config"
	"domainsearch/internal/db"
	"domainsearch/internal/logging"
	"domainsearch/internal/models"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.IsDev(), cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	cutoff := models.EvictionCutoff(time.Now(), cfg.RetentionDays)
	deleted, err := database.DeleteSearchesOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("eviction failed", "error", err)
		database.Close()
		os.Exit(1)
	}

	slog.Info("eviction complete", "deleted", deleted, "cutoff", cutoff.Format(time.DateOnly))
}
