package reports

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

func testDataset() *domain.Dataset {
	return &domain.Dataset{
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
						BloomsLevel: domain.BloomApply,
					},
				},
			},
			{
				Code:             "COMP20080",
				Title:            "Computer Systems",
				Level:            2,
				Credits:          5,
				LearningOutcomes: []string{"Understand the architecture of a modern CPU."},
				ExtractedSkills: []domain.Skill{
					{
						SkillName:   "Write and debug programs",
						Category:    domain.CategoryTechnical,
						BloomsLevel: domain.BloomApply,
					},
					{
						SkillName:   "Computer Architecture Fundamentals",
						Category:    domain.CategoryDomainSpecific,
						BloomsLevel: domain.BloomUnderstand,
					},
				},
			},
		},
		Taxonomy: domain.Taxonomy{
			Domains: []domain.TaxonomyDomain{{Name: "Technical"}, {Name: "Domain-Specific"}},
		},
		TotalSkills:  3,
		TotalModules: 2,
	}
}

func TestWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	require.NoError(t, w.WriteAll(testDataset()))

	for _, name := range []string{
		StatisticsFile, ModuleSummaryCSV, SkillFrequencyCSV,
		ModuleSummaryTeX, SkillFrequencyTeX, AnalysisReportFile,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestWriter_NilDataset(t *testing.T) {
	w := NewWriter(t.TempDir())
	assert.ErrorIs(t, w.WriteAll(nil), domain.ErrNoDataset)
}

func TestWriter_Statistics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteAll(testDataset()))

	raw, err := os.ReadFile(filepath.Join(dir, StatisticsFile))
	require.NoError(t, err)

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Contains(t, stats, "total_modules")
	assert.Contains(t, stats, "skills_by_blooms")
	assert.Contains(t, stats, "average_skills_per_module")
	assert.JSONEq(t, "2", string(stats["total_modules"]))
	assert.JSONEq(t, "1.5", string(stats["average_skills_per_module"]))
}

func TestWriter_ModuleSummaryCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteAll(testDataset()))

	f, err := os.Open(filepath.Join(dir, ModuleSummaryCSV))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Code", "Title", "Level", "Credits", "Learning Outcomes", "Extracted Skills"}, records[0])
	assert.Equal(t, []string{"COMP10010", "Introduction to Programming", "1", "5", "1", "1"}, records[1])
	assert.Equal(t, []string{"COMP20080", "Computer Systems", "2", "5", "1", "2"}, records[2])
}

func TestWriter_SkillFrequencyCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteAll(testDataset()))

	f, err := os.Open(filepath.Join(dir, SkillFrequencyCSV))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Write and debug programs", "2"}, records[1])
	assert.Equal(t, []string{"Computer Architecture Fundamentals", "1"}, records[2])
}

func TestWriter_TextReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteAll(testDataset()))

	raw, err := os.ReadFile(filepath.Join(dir, AnalysisReportFile))
	require.NoError(t, err)
	report := string(raw)

	assert.Contains(t, report, "TAXONOMY GENERATION ANALYSIS REPORT")
	assert.Contains(t, report, "Total modules analyzed: 2")
	assert.Contains(t, report, "Modules with learning outcomes: 2")
	assert.Contains(t, report, "Total skills extracted: 3")
	assert.Contains(t, report, "Average skills per module: 1.50")
	assert.Contains(t, report, "Level 1: 1 modules")
	assert.Contains(t, report, "Technical: 2")
	assert.Contains(t, report, "Apply: 2")
	assert.Contains(t, report, "Understand: 1")
	assert.Contains(t, report, "Level 2: 2 skills")
}

func TestWriter_LaTeXEscaping(t *testing.T) {
	d := testDataset()
	d.Modules[0].Title = "Algorithms & Data Structures 100%"

	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteAll(d))

	raw, err := os.ReadFile(filepath.Join(dir, ModuleSummaryTeX))
	require.NoError(t, err)
	tex := string(raw)

	assert.Contains(t, tex, `Algorithms \& Data Structures 100\%`)
	assert.Contains(t, tex, `\begin{tabular}{llllll}`)
	assert.Contains(t, tex, `\caption{Module Summary}`)
	assert.Contains(t, tex, `\toprule`)
}

func TestLatexEscape(t *testing.T) {
	assert.Equal(t, `a \& b \_ c \# 50\%`, latexEscape(`a & b _ c # 50%`))
}

func TestNewWriter_DefaultDir(t *testing.T) {
	assert.Equal(t, "reports", NewWriter("").Dir())
}
