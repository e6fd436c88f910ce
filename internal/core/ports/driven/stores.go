package driven

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// ModuleStore caches scraped modules between pipeline runs so that
// taxonomy generation does not require re-scraping the catalogue.
type ModuleStore interface {
	// SaveRun records a scrape run and its modules atomically.
	// Modules are keyed by code; a later run replaces earlier rows.
	SaveRun(ctx context.Context, run domain.ScrapeRun, modules []domain.Module) error

	// ListModules returns all cached modules, ordered by code.
	ListModules(ctx context.Context) ([]domain.Module, error)

	// GetModule retrieves one cached module by code.
	// Returns domain.ErrNotFound when the code is not cached.
	GetModule(ctx context.Context, code string) (*domain.Module, error)

	// LatestRun returns the most recent scrape run, or domain.ErrNotFound
	// when no run has completed yet.
	LatestRun(ctx context.Context) (*domain.ScrapeRun, error)

	// Close releases resources.
	Close() error
}

// DatasetStore persists the generated dataset document (taxonomy plus
// enriched modules) as the interchange format between pipeline stages.
type DatasetStore interface {
	// Save writes the dataset, replacing any previous one.
	Save(ctx context.Context, d *domain.Dataset) error

	// Load reads the dataset back. Returns domain.ErrNoDataset when
	// nothing has been saved yet.
	Load(ctx context.Context) (*domain.Dataset, error)

	// Path returns the location of the persisted document, for display.
	Path() string
}
