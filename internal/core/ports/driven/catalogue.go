package driven

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// Catalogue fetches module descriptors from a university catalogue.
// The only implementation today is the UCD connector; the interface keeps
// the scrape orchestrator independent of any particular institution.
type Catalogue interface {
	// Codes returns the candidate module codes to try, either from a
	// configured code list or generated from catalogue naming patterns.
	Codes(ctx context.Context) ([]string, error)

	// Fetch retrieves the descriptor for one module code.
	// A module that does not exist in the catalogue returns (nil, nil):
	// absence is an expected outcome, not an error. A returned module is
	// always fully populated; the connector never hands back a partial
	// record with missing required fields.
	Fetch(ctx context.Context, code string) (*domain.Module, error)

	// Close releases resources.
	Close() error
}
