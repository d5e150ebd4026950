package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"domainsearch/internal/handlers"
)

// Dependencies are the collaborators the routes are wired to.
type Dependencies struct {
	Checker handlers.DomainChecker
	Reader  handlers.SearchReader
	Pinger  handlers.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Dependencies) {
	searchHandler := handlers.NewSearchHandler(deps.Checker, deps.Reader)
	probeHandler := handlers.NewProbeHandler(deps.Pinger)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Searches; /recent must be registered before the :domain catch-all
	s.App.Get("/searches/action", searchHandler.Action)
	s.App.Post("/searches/action", searchHandler.Action)
	s.App.Get("/searches/recent", searchHandler.Recent)
	s.App.Get("/searches/:domain", searchHandler.ByDomain)
}
