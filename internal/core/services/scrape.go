package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Ensure ScrapeService implements the interface.
var _ driving.ScrapeOrchestrator = (*ScrapeService)(nil)

// ScrapeService walks the candidate code list, fetches each descriptor
// through the catalogue connector, and records the run in the module
// store. Fetch failures and absent modules are skipped, never fatal.
type ScrapeService struct {
	catalogue   driven.Catalogue
	moduleStore driven.ModuleStore
}

// NewScrapeService creates a scrape orchestrator. The module store is
// optional; without one, results are only returned, not cached.
func NewScrapeService(catalogue driven.Catalogue, moduleStore driven.ModuleStore) *ScrapeService {
	return &ScrapeService{
		catalogue:   catalogue,
		moduleStore: moduleStore,
	}
}

// Scrape performs one pass over the catalogue.
func (s *ScrapeService) Scrape(ctx context.Context, opts driving.ScrapeOptions) (*driving.ScrapeSummary, error) {
	if s.catalogue == nil {
		return nil, domain.ErrCatalogueUnavailable
	}

	codes, err := s.catalogue.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidate codes: %w", err)
	}
	logger.Info("attempting %d candidate module codes", len(codes))

	run := domain.ScrapeRun{
		ID:        uuid.New().String(),
		Term:      opts.Term,
		StartedAt: time.Now(),
	}

	summary := &driving.ScrapeSummary{}
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary.CodesTried++

		module, err := s.catalogue.Fetch(ctx, code)
		if err != nil {
			logger.Warn("fetching %s: %v", code, err)
			continue
		}
		if module == nil {
			continue
		}

		logger.Info("found %s - %s", module.Code, module.Title)
		summary.Modules = append(summary.Modules, *module)
		if module.HasOutcomes() {
			summary.WithOutcomes++
		}

		if opts.MaxModules > 0 && len(summary.Modules) >= opts.MaxModules {
			logger.Info("reached target of %d modules, stopping search", opts.MaxModules)
			break
		}
	}

	run.FinishedAt = time.Now()
	run.ModulesFound = len(summary.Modules)
	summary.Run = run

	if s.moduleStore != nil && len(summary.Modules) > 0 {
		if err := s.moduleStore.SaveRun(ctx, run, summary.Modules); err != nil {
			return nil, fmt.Errorf("caching scraped modules: %w", err)
		}
	}

	return summary, nil
}
