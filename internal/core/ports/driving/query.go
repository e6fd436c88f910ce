package driving

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// SkillLocation is a consolidated skill together with where it sits
// in the taxonomy hierarchy.
type SkillLocation struct {
	// Domain is the taxonomy domain name (the skill category).
	Domain string

	// SubCategory is the skill-type group name.
	SubCategory string

	// Skill is the consolidated record.
	Skill domain.ConsolidatedSkill
}

// TaxonomyQuery provides read-only access to the generated dataset for
// display surfaces (CLI show, MCP). It never mutates the dataset.
type TaxonomyQuery interface {
	// Dataset returns the full generated dataset.
	// Returns domain.ErrNoDataset when none has been generated.
	Dataset(ctx context.Context) (*domain.Dataset, error)

	// LookupSkill finds consolidated skills whose name contains the query,
	// case-insensitively, with their taxonomy locations.
	LookupSkill(ctx context.Context, name string) ([]SkillLocation, error)

	// Module returns one enriched module by code.
	Module(ctx context.Context, code string) (*domain.Module, error)
}
