package services

import (
	"sort"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// SummaryStatistics aggregates a dataset for reporting.
type SummaryStatistics struct {
	TotalModules            int                       `json:"total_modules"`
	ModulesWithOutcomes     int                       `json:"modules_with_outcomes"`
	TotalSkillsExtracted    int                       `json:"total_skills_extracted"`
	TotalDomains            int                       `json:"total_domains"`
	SkillsByLevel           map[int]int               `json:"skills_by_level"`
	SkillsByCategory        map[domain.Category]int   `json:"skills_by_category"`
	SkillsByBlooms          map[domain.BloomLevel]int `json:"skills_by_blooms"`
	AverageSkillsPerModule  float64                   `json:"average_skills_per_module"`
	ModuleLevelDistribution map[int]int               `json:"module_level_distribution"`
}

// ModuleSummaryRow is one line of the module summary table.
type ModuleSummaryRow struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	Level           int    `json:"level"`
	Credits         int    `json:"credits"`
	OutcomeCount    int    `json:"learning_outcomes"`
	ExtractedSkills int    `json:"extracted_skills"`
}

// SkillFrequency is one line of the skill frequency table.
type SkillFrequency struct {
	Skill     string `json:"skill"`
	Frequency int    `json:"frequency"`
}

// Summarise computes summary statistics over a generated dataset.
func Summarise(d *domain.Dataset) SummaryStatistics {
	stats := SummaryStatistics{
		TotalModules:            len(d.Modules),
		TotalSkillsExtracted:    d.TotalSkills,
		TotalDomains:            len(d.Taxonomy.Domains),
		SkillsByLevel:           map[int]int{},
		SkillsByCategory:        map[domain.Category]int{},
		SkillsByBlooms:          map[domain.BloomLevel]int{},
		ModuleLevelDistribution: map[int]int{},
	}

	totalSkills := 0
	for _, m := range d.Modules {
		if m.HasOutcomes() {
			stats.ModulesWithOutcomes++
		}
		stats.SkillsByLevel[m.Level] += len(m.ExtractedSkills)
		stats.ModuleLevelDistribution[m.Level]++
		totalSkills += len(m.ExtractedSkills)

		for _, s := range m.ExtractedSkills {
			stats.SkillsByCategory[s.Category]++
			stats.SkillsByBlooms[s.BloomsLevel]++
		}
	}

	if len(d.Modules) > 0 {
		stats.AverageSkillsPerModule = float64(totalSkills) / float64(len(d.Modules))
	}

	return stats
}

// ModuleSummary builds the per-module summary table, in dataset order.
func ModuleSummary(d *domain.Dataset) []ModuleSummaryRow {
	rows := make([]ModuleSummaryRow, 0, len(d.Modules))
	for _, m := range d.Modules {
		rows = append(rows, ModuleSummaryRow{
			Code:            m.Code,
			Title:           m.Title,
			Level:           m.Level,
			Credits:         m.Credits,
			OutcomeCount:    len(m.LearningOutcomes),
			ExtractedSkills: len(m.ExtractedSkills),
		})
	}
	return rows
}

// TopSkills returns the topN most frequent skill names across all
// extracted skills. Ties break by first appearance in the dataset.
func TopSkills(d *domain.Dataset, topN int) []SkillFrequency {
	order := []string{}
	counts := map[string]int{}
	for _, m := range d.Modules {
		for _, s := range m.ExtractedSkills {
			if _, ok := counts[s.SkillName]; !ok {
				order = append(order, s.SkillName)
			}
			counts[s.SkillName]++
		}
	}

	freqs := make([]SkillFrequency, 0, len(order))
	for _, name := range order {
		freqs = append(freqs, SkillFrequency{Skill: name, Frequency: counts[name]})
	}

	// Stable sort keeps first-appearance order among equal counts.
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Frequency > freqs[j].Frequency
	})

	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}
	return freqs
}
