package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"domainsearch/internal/checker"
	"domainsearch/internal/db"
	"domainsearch/internal/models"
	"domainsearch/internal/validation"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// DomainChecker runs the check-and-cache workflow for one search.
type DomainChecker interface {
	Check(ctx context.Context, searchText string) (*models.CheckResponse, error)
}

// SearchReader reads cached search records.
type SearchReader interface {
	GetSearchesByDomain(ctx context.Context, domain string) ([]models.SearchRecord, error)
	ListRecentSearches(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

// SearchHandler handles domain search requests.
type SearchHandler struct {
	checker DomainChecker
	reader  SearchReader
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(checker DomainChecker, reader SearchReader) *SearchHandler {
	return &SearchHandler{checker: checker, reader: reader}
}

// Action checks search_text against every configured suffix and returns
// {"domain": [...], "results": [...], "outcomes": [...]}.
// With legacy=1 the response is {"domain": [...], "x": bool}.
func (h *SearchHandler) Action(c fiber.Ctx) error {
	searchText := c.Query("search_text")
	if searchText == "" {
		searchText = c.FormValue("search_text")
	}

	resp, err := h.checker.Check(c.Context(), searchText)
	if err != nil {
		if errors.Is(err, checker.ErrInvalidName) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("domain check failed", "search_text", searchText, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to check domains")
	}

	if c.Query("legacy") == "1" {
		return c.JSON(resp.Legacy())
	}
	return c.JSON(resp)
}

// Recent lists the most recently cached records.
func (h *SearchHandler) Recent(c fiber.Ctx) error {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return jsonError(c, fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, maxRecentLimit)
	}

	searches, err := h.reader.ListRecentSearches(c.Context(), limit)
	if err != nil {
		slog.Error("failed to list recent searches", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to list searches")
	}
	if searches == nil {
		searches = []models.SearchRecord{}
	}

	return jsonSuccess(c, searches)
}

// ByDomain returns the cached records for one fully qualified domain.
func (h *SearchHandler) ByDomain(c fiber.Ctx) error {
	domain := strings.ToLower(c.Params("domain"))
	if !validation.ValidateDomain(domain) {
		return jsonError(c, fiber.StatusBadRequest, "invalid domain")
	}

	searches, err := h.reader.GetSearchesByDomain(c.Context(), domain)
	if err != nil {
		if errors.Is(err, db.ErrSearchNotFound) {
			return jsonError(c, fiber.StatusNotFound, "domain not cached")
		}
		slog.Error("failed to fetch searches", "domain", domain, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch searches")
	}

	return jsonSuccess(c, searches)
}
