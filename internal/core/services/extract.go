package services

import (
	"context"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Ensure RuleExtractor implements the interface.
var _ driven.SkillExtractor = (*RuleExtractor)(nil)

// RuleExtractor is the keyword-heuristic skill extractor. It is the
// default extraction method and needs no external services.
type RuleExtractor struct{}

// NewRuleExtractor creates the rule-based extractor.
func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

// Name identifies the extraction method.
func (e *RuleExtractor) Name() string {
	return "heuristic"
}

// ExtractSkills classifies every learning outcome of the module in order.
func (e *RuleExtractor) ExtractSkills(_ context.Context, module domain.Module) ([]domain.Skill, error) {
	var skills []domain.Skill
	for _, outcome := range module.LearningOutcomes {
		skills = append(skills, ClassifyOutcome(outcome, module.Code)...)
	}
	return skills, nil
}

// ExtractService drives a SkillExtractor over a module collection and
// accumulates the flat global skill sequence.
type ExtractService struct {
	extractor driven.SkillExtractor
}

// NewExtractService creates an extraction service using the given
// extractor. A nil extractor falls back to the rule-based one.
func NewExtractService(extractor driven.SkillExtractor) *ExtractService {
	if extractor == nil {
		extractor = NewRuleExtractor()
	}
	return &ExtractService{extractor: extractor}
}

// ExtractorName identifies the extraction method in use.
func (s *ExtractService) ExtractorName() string {
	return s.extractor.Name()
}

// Extract runs the extractor over every module that has learning
// outcomes. Modules without outcomes are silently dropped from the
// enriched output. Missing module fields are defaulted, never rejected.
// Output order is deterministic: module order, then outcome order, then
// rule order within an outcome.
func (s *ExtractService) Extract(ctx context.Context, modules []domain.Module) (*domain.Extraction, error) {
	enriched := []domain.Module{}
	allSkills := []domain.Skill{}

	for _, m := range modules {
		m = m.Normalised()
		if !m.HasOutcomes() {
			logger.Debug("module %s has no learning outcomes, skipping", m.Code)
			continue
		}

		skills, err := s.extractor.ExtractSkills(ctx, m)
		if err != nil {
			return nil, err
		}

		logger.Debug("module %s: %d outcomes, %d skills", m.Code, len(m.LearningOutcomes), len(skills))

		m.ExtractedSkills = skills
		enriched = append(enriched, m)
		allSkills = append(allSkills, skills...)
	}

	return &domain.Extraction{
		Modules:      enriched,
		AllSkills:    allSkills,
		TotalModules: len(enriched),
		TotalSkills:  len(allSkills),
	}, nil
}
