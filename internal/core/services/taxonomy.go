package services

import (
	"context"
	"fmt"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Ensure TaxonomyBuilder implements the interface.
var _ driving.TaxonomyService = (*TaxonomyBuilder)(nil)

// BuildTaxonomy groups the flat skill sequence into the two-level
// hierarchy: category, then skill type within the category. Both levels
// iterate in first-encounter order from a single scan of the input, and
// each (category, skill type) bucket is consolidated independently.
// Descriptions are fixed templates, not content-derived.
func BuildTaxonomy(skills []domain.Skill) domain.Taxonomy {
	categoryOrder := []domain.Category{}
	typeOrder := map[domain.Category][]string{}
	buckets := map[domain.Category]map[string][]domain.Skill{}

	for _, s := range skills {
		types, ok := buckets[s.Category]
		if !ok {
			types = map[string][]domain.Skill{}
			buckets[s.Category] = types
			categoryOrder = append(categoryOrder, s.Category)
		}
		if _, ok := types[s.SkillType]; !ok {
			typeOrder[s.Category] = append(typeOrder[s.Category], s.SkillType)
		}
		types[s.SkillType] = append(types[s.SkillType], s)
	}

	domains := make([]domain.TaxonomyDomain, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		subs := make([]domain.SubCategory, 0, len(typeOrder[category]))
		for _, skillType := range typeOrder[category] {
			subs = append(subs, domain.SubCategory{
				Name:        skillType,
				Description: fmt.Sprintf("%s skills in %s category", skillType, category),
				Skills:      Consolidate(buckets[category][skillType]),
			})
		}
		domains = append(domains, domain.TaxonomyDomain{
			Name:          string(category),
			Description:   fmt.Sprintf("%s competencies", category),
			SubCategories: subs,
		})
	}

	return domain.Taxonomy{Domains: domains}
}

// TaxonomyBuilder assembles the dataset document: it extracts skills
// from the modules, builds the taxonomy, and carries the totals.
type TaxonomyBuilder struct {
	extract *ExtractService
}

// NewTaxonomyBuilder creates a taxonomy builder around the extraction
// service.
func NewTaxonomyBuilder(extract *ExtractService) *TaxonomyBuilder {
	return &TaxonomyBuilder{extract: extract}
}

// ExtractorName identifies the extraction method in use.
func (b *TaxonomyBuilder) ExtractorName() string {
	return b.extract.ExtractorName()
}

// Generate runs extraction then taxonomy construction over the modules.
func (b *TaxonomyBuilder) Generate(ctx context.Context, modules []domain.Module) (*domain.Dataset, error) {
	logger.Section("Extracting skills")
	extraction, err := b.extract.Extract(ctx, modules)
	if err != nil {
		return nil, fmt.Errorf("extracting skills: %w", err)
	}
	logger.Info("analysed %d modules, extracted %d skills",
		extraction.TotalModules, extraction.TotalSkills)

	logger.Section("Building taxonomy")
	taxonomy := BuildTaxonomy(extraction.AllSkills)
	logger.Info("identified %d domains", len(taxonomy.Domains))

	return &domain.Dataset{
		Taxonomy:     taxonomy,
		Modules:      extraction.Modules,
		TotalSkills:  extraction.TotalSkills,
		TotalModules: extraction.TotalModules,
	}, nil
}
