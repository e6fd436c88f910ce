package driven

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// SkillExtractor turns a module's learning outcomes into skill records.
// The rule-based classifier in services is the default implementation;
// the Anthropic adapter substitutes for it when configured. Both must
// produce the same Skill shape so the taxonomy builder stays agnostic
// to the extraction method.
type SkillExtractor interface {
	// ExtractSkills returns the skill records for the module's outcomes,
	// preserving outcome order then rule order within an outcome.
	// Every outcome yields at least one record.
	ExtractSkills(ctx context.Context, module domain.Module) ([]domain.Skill, error)

	// Name identifies the extraction method for logging and reports.
	Name() string
}
