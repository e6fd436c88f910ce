package services

import (
	"context"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.TaxonomyQuery = (*QueryService)(nil)

// QueryService answers read-only questions about the generated dataset
// for the show command and the MCP server. It never mutates the dataset.
type QueryService struct {
	datasetStore driven.DatasetStore
}

// NewQueryService creates a query service over the dataset store.
func NewQueryService(datasetStore driven.DatasetStore) *QueryService {
	return &QueryService{datasetStore: datasetStore}
}

// Dataset returns the full generated dataset.
func (s *QueryService) Dataset(ctx context.Context) (*domain.Dataset, error) {
	if s.datasetStore == nil {
		return nil, domain.ErrNoDataset
	}
	return s.datasetStore.Load(ctx)
}

// LookupSkill finds consolidated skills whose name contains the query,
// case-insensitively, walking the taxonomy in its stored order.
func (s *QueryService) LookupSkill(ctx context.Context, name string) ([]driving.SkillLocation, error) {
	dataset, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	matches := []driving.SkillLocation{}
	for _, d := range dataset.Taxonomy.Domains {
		for _, sub := range d.SubCategories {
			for _, skill := range sub.Skills {
				if strings.Contains(strings.ToLower(skill.Name), needle) {
					matches = append(matches, driving.SkillLocation{
						Domain:      d.Name,
						SubCategory: sub.Name,
						Skill:       skill,
					})
				}
			}
		}
	}
	return matches, nil
}

// Module returns one enriched module by code.
func (s *QueryService) Module(ctx context.Context, code string) (*domain.Module, error) {
	dataset, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	for i := range dataset.Modules {
		if dataset.Modules[i].Code == code {
			return &dataset.Modules[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
