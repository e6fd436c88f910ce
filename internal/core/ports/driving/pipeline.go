package driving

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// ScrapeOptions configures one pass over the catalogue.
type ScrapeOptions struct {
	// MaxModules stops the scrape after this many modules are found.
	// Zero means unlimited.
	MaxModules int

	// Term is the academic term code, e.g. "202500".
	Term string
}

// ScrapeSummary reports the outcome of a scrape.
type ScrapeSummary struct {
	// Run is the recorded scrape run.
	Run domain.ScrapeRun

	// Modules are the modules found, in discovery order.
	Modules []domain.Module

	// CodesTried is how many candidate codes were attempted.
	CodesTried int

	// WithOutcomes is how many found modules carry learning outcomes.
	WithOutcomes int
}

// ScrapeOrchestrator drives the catalogue connector and caches results.
type ScrapeOrchestrator interface {
	// Scrape fetches modules from the catalogue, records the run in the
	// module store, and returns a summary. Individual fetch failures are
	// skipped, never fatal; only a wholly unreachable catalogue errors.
	Scrape(ctx context.Context, opts ScrapeOptions) (*ScrapeSummary, error)
}

// TaxonomyService runs the extraction, consolidation, and taxonomy
// stages over already-scraped modules and assembles the dataset.
type TaxonomyService interface {
	// Generate builds the dataset from the given modules. Modules without
	// learning outcomes are excluded from the enriched output.
	Generate(ctx context.Context, modules []domain.Module) (*domain.Dataset, error)

	// ExtractorName identifies the extraction method in use.
	ExtractorName() string
}
