package mcp

import (
	"context"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.TaxonomyQuery.
type mockQueryService struct {
	dataset *domain.Dataset
	err     error
}

func (m *mockQueryService) Dataset(_ context.Context) (*domain.Dataset, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dataset, nil
}

func (m *mockQueryService) LookupSkill(_ context.Context, name string) ([]driving.SkillLocation, error) {
	if m.err != nil {
		return nil, m.err
	}

	var matches []driving.SkillLocation
	for _, d := range m.dataset.Taxonomy.Domains {
		for _, sc := range d.SubCategories {
			for _, s := range sc.Skills {
				if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
					matches = append(matches, driving.SkillLocation{
						Domain:      d.Name,
						SubCategory: sc.Name,
						Skill:       s,
					})
				}
			}
		}
	}
	return matches, nil
}

func (m *mockQueryService) Module(_ context.Context, code string) (*domain.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.dataset.Modules {
		if m.dataset.Modules[i].Code == code {
			return &m.dataset.Modules[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// testDataset builds a small dataset for handler tests.
func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Taxonomy: domain.Taxonomy{
			Domains: []domain.TaxonomyDomain{
				{
					Name:        "Technical",
					Description: "Technical competencies",
					SubCategories: []domain.SubCategory{
						{
							Name:        "Programming",
							Description: "Programming skills in Technical category",
							Skills: []domain.ConsolidatedSkill{
								{
									Name:              "Write and debug programs",
									AppearsInModules:  []string{"COMP10010", "COMP20080"},
									BloomLevels:       []domain.BloomLevel{domain.BloomApply},
									ProficiencyLevels: []domain.Proficiency{domain.ProficiencyBeginner, domain.ProficiencyIntermediate},
								},
							},
						},
					},
				},
			},
		},
		Modules: []domain.Module{
			{
				Code:             "COMP10010",
				Title:            "Introduction to Programming",
				Level:            1,
				LearningOutcomes: []string{"Write and debug programs in a high-level language."},
				ExtractedSkills: []domain.Skill{
					{SkillName: "Write and debug programs", Category: domain.CategoryTechnical, BloomsLevel: domain.BloomApply},
				},
			},
		},
		TotalSkills:  1,
		TotalModules: 1,
	}
}
