package cli

import (
	"context"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/adapters/driven/storage/memory"
	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
)

// mockScrapeOrchestrator is a mock implementation of driving.ScrapeOrchestrator.
type mockScrapeOrchestrator struct {
	summary *driving.ScrapeSummary
	err     error
	gotOpts driving.ScrapeOptions
}

func (m *mockScrapeOrchestrator) Scrape(_ context.Context, opts driving.ScrapeOptions) (*driving.ScrapeSummary, error) {
	m.gotOpts = opts
	return m.summary, m.err
}

// mockTaxonomyService is a mock implementation of driving.TaxonomyService.
type mockTaxonomyService struct {
	dataset *domain.Dataset
	err     error
}

func (m *mockTaxonomyService) Generate(_ context.Context, _ []domain.Module) (*domain.Dataset, error) {
	return m.dataset, m.err
}

func (m *mockTaxonomyService) ExtractorName() string {
	return "heuristic"
}

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
					matches = append(matches, driving.SkillLocation{Domain: d.Name, SubCategory: sc.Name, Skill: s})
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

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: map[string]any{}}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Save() error { return nil }

// testDataset builds a small dataset for command tests.
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
									AppearsInModules:  []string{"COMP10010"},
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
				Credits:          5,
				LearningOutcomes: []string{"Write and debug programs in a high-level language."},
				ExtractedSkills: []domain.Skill{
					{
						SkillName:   "Write and debug programs",
						Category:    domain.CategoryTechnical,
						SkillType:   "Programming",
						BloomsLevel: domain.BloomApply,
					},
				},
			},
		},
		TotalSkills:  1,
		TotalModules: 1,
	}
}

// setupTestServices wires mock services into the package vars and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldScrape := scrapeOrchestrator
	oldTaxonomy := taxonomyService
	oldQuery := taxonomyQuery
	oldModules := moduleStore
	oldDatasets := datasetStore
	oldConfig := configStore
	oldReports := reportWriter

	modules := memory.NewModuleStore()
	_ = modules.SaveRun(context.Background(), domain.ScrapeRun{ID: "run-1"}, testDataset().Modules)

	datasets := memory.NewDatasetStore()

	Setup(Config{
		ScrapeOrchestrator: &mockScrapeOrchestrator{summary: &driving.ScrapeSummary{
			Run:          domain.ScrapeRun{ID: "run-1", ModulesFound: 1},
			Modules:      testDataset().Modules,
			CodesTried:   48,
			WithOutcomes: 1,
		}},
		TaxonomyService: &mockTaxonomyService{dataset: testDataset()},
		TaxonomyQuery:   &mockQueryService{dataset: testDataset()},
		ModuleStore:     modules,
		DatasetStore:    datasets,
		ConfigStore:     newMockConfigStore(),
	})

	return func() {
		scrapeOrchestrator = oldScrape
		taxonomyService = oldTaxonomy
		taxonomyQuery = oldQuery
		moduleStore = oldModules
		datasetStore = oldDatasets
		configStore = oldConfig
		reportWriter = oldReports
	}
}
