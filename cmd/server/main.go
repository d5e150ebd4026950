package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"domainsearch/internal/checker"
	"domainsearch/internal/config"
	"domainsearch/internal/db"
	"domainsearch/internal/jobs"
	"domainsearch/internal/logging"
	"domainsearch/internal/metrics"
	"domainsearch/internal/server"
	"domainsearch/internal/whois"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logging.Init(cfg.IsDev(), cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		fatal("Failed to load config file", err)
	}
	suffixes, err := yamlCfg.Suffixes(cfg.SuffixSet)
	if err != nil {
		fatal("Failed to resolve suffix set", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal("Failed to connect to database", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		fatal("Failed to run migrations", err)
	}
	slog.Info("migrations completed successfully")

	metrics.Init(database)

	provider, err := whois.NewProvider(cfg.WhoisProvider, whois.XMLAPIConfig{
		BaseURL:  cfg.WhoisAPIURL,
		APIKey:   cfg.WhoisAPIKey,
		Username: cfg.WhoisUsername,
		Password: cfg.WhoisPassword,
		Timeout:  cfg.WhoisTimeout,
	})
	if err != nil {
		fatal("Failed to configure whois provider", err)
	}

	domainChecker, err := checker.New(database, provider, checker.Options{
		Suffixes:      suffixes,
		RetentionDays: cfg.RetentionDays,
	})
	if err != nil {
		fatal("Failed to create checker", err)
	}
	slog.Info("domain checker ready", "provider", provider.Name(), "suffixes", suffixes)

	// Background eviction
	if cfg.EvictionInterval > 0 {
		go jobs.NewEvictor(domainChecker, cfg.EvictionInterval).Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Dependencies{
		Checker: domainChecker,
		Reader:  database,
		Pinger:  database,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		fatal("Server forced to shutdown", err)
	}
	metrics.Flush()
	slog.Info("server exited")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
