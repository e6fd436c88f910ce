// Package reports renders a generated dataset into analysis artefacts:
// summary statistics as JSON, module and skill tables as CSV and LaTeX,
// and a human-readable text report.
package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/services"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Output file names within the report directory.
const (
	StatisticsFile     = "statistics.json"
	ModuleSummaryCSV   = "module_summary.csv"
	SkillFrequencyCSV  = "skill_frequency.csv"
	ModuleSummaryTeX   = "module_summary.tex"
	SkillFrequencyTeX  = "skill_frequency.tex"
	AnalysisReportFile = "analysis_report.txt"
)

// topSkillCount is how many skills the frequency table covers.
const topSkillCount = 20

// Writer renders analysis reports for a dataset.
type Writer struct {
	dir string
}

// NewWriter creates a report writer targeting the given directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "reports"
	}
	return &Writer{dir: dir}
}

// Dir returns the report output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteAll renders every report artefact for the dataset.
func (w *Writer) WriteAll(d *domain.Dataset) error {
	if d == nil {
		return domain.ErrNoDataset
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	stats := services.Summarise(d)
	moduleRows := services.ModuleSummary(d)
	skillRows := services.TopSkills(d, topSkillCount)

	if err := w.writeStatistics(stats); err != nil {
		return err
	}
	if err := w.writeModuleCSV(moduleRows); err != nil {
		return err
	}
	if err := w.writeSkillCSV(skillRows); err != nil {
		return err
	}
	if err := w.writeModuleTeX(moduleRows); err != nil {
		return err
	}
	if err := w.writeSkillTeX(skillRows); err != nil {
		return err
	}
	if err := w.writeTextReport(stats); err != nil {
		return err
	}

	logger.Info("Analysis reports written to %s", w.dir)
	return nil
}

func (w *Writer) writeStatistics(stats services.SummaryStatistics) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding statistics: %w", err)
	}
	return w.writeFile(StatisticsFile, data)
}

func (w *Writer) writeModuleCSV(rows []services.ModuleSummaryRow) error {
	records := [][]string{
		{"Code", "Title", "Level", "Credits", "Learning Outcomes", "Extracted Skills"},
	}
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Title,
			strconv.Itoa(r.Level), strconv.Itoa(r.Credits),
			strconv.Itoa(r.OutcomeCount), strconv.Itoa(r.ExtractedSkills),
		})
	}
	return w.writeCSV(ModuleSummaryCSV, records)
}

func (w *Writer) writeSkillCSV(rows []services.SkillFrequency) error {
	records := [][]string{{"Skill", "Frequency"}}
	for _, r := range rows {
		records = append(records, []string{r.Skill, strconv.Itoa(r.Frequency)})
	}
	return w.writeCSV(SkillFrequencyCSV, records)
}

func (w *Writer) writeModuleTeX(rows []services.ModuleSummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Title,
			strconv.Itoa(r.Level), strconv.Itoa(r.Credits),
			strconv.Itoa(r.OutcomeCount), strconv.Itoa(r.ExtractedSkills),
		})
	}
	table := latexTable(
		[]string{"Code", "Title", "Level", "Credits", "Learning Outcomes", "Extracted Skills"},
		records, "Module Summary", "tab:modules",
	)
	return w.writeFile(ModuleSummaryTeX, []byte(table))
}

func (w *Writer) writeSkillTeX(rows []services.SkillFrequency) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Skill, strconv.Itoa(r.Frequency)})
	}
	table := latexTable([]string{"Skill", "Frequency"}, records, "Skill Frequency", "tab:skills")
	return w.writeFile(SkillFrequencyTeX, []byte(table))
}

// writeTextReport renders the human-readable summary. Section ordering
// is fixed; map-backed sections are sorted so output is reproducible.
func (w *Writer) writeTextReport(stats services.SummaryStatistics) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	line := strings.Repeat("-", 60)

	fmt.Fprintf(&b, "%s\nTAXONOMY GENERATION ANALYSIS REPORT\n%s\n\n", rule, rule)

	fmt.Fprintf(&b, "SUMMARY STATISTICS\n%s\n", line)
	fmt.Fprintf(&b, "Total modules analyzed: %d\n", stats.TotalModules)
	fmt.Fprintf(&b, "Modules with learning outcomes: %d\n", stats.ModulesWithOutcomes)
	fmt.Fprintf(&b, "Total skills extracted: %d\n", stats.TotalSkillsExtracted)
	fmt.Fprintf(&b, "Total domains identified: %d\n", stats.TotalDomains)
	fmt.Fprintf(&b, "Average skills per module: %.2f\n\n", stats.AverageSkillsPerModule)

	fmt.Fprintf(&b, "MODULE LEVEL DISTRIBUTION\n%s\n", line)
	for _, level := range sortedKeys(stats.ModuleLevelDistribution) {
		fmt.Fprintf(&b, "Level %d: %d modules\n", level, stats.ModuleLevelDistribution[level])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "SKILLS BY CATEGORY\n%s\n", line)
	for _, entry := range byDescendingCount(stats.SkillsByCategory) {
		fmt.Fprintf(&b, "%s: %d\n", entry.name, entry.count)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "SKILLS BY BLOOM'S TAXONOMY LEVEL\n%s\n", line)
	bloomOrder := []domain.BloomLevel{
		domain.BloomRemember, domain.BloomUnderstand, domain.BloomApply,
		domain.BloomAnalyze, domain.BloomEvaluate, domain.BloomCreate,
	}
	for _, level := range bloomOrder {
		fmt.Fprintf(&b, "%s: %d\n", level, stats.SkillsByBlooms[level])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "SKILLS BY MODULE LEVEL\n%s\n", line)
	for _, level := range sortedKeys(stats.SkillsByLevel) {
		fmt.Fprintf(&b, "Level %d: %d skills\n", level, stats.SkillsByLevel[level])
	}
	b.WriteString("\n")

	return w.writeFile(AnalysisReportFile, []byte(b.String()))
}

func (w *Writer) writeCSV(name string, records [][]string) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (w *Writer) writeFile(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// latexTable renders a booktabs-style LaTeX table.
func latexTable(headers []string, rows [][]string, caption, label string) string {
	var b strings.Builder

	b.WriteString("\\begin{table}\n")
	fmt.Fprintf(&b, "\\caption{%s}\n", caption)
	fmt.Fprintf(&b, "\\label{%s}\n", label)
	fmt.Fprintf(&b, "\\begin{tabular}{%s}\n", strings.Repeat("l", len(headers)))
	b.WriteString("\\toprule\n")

	escaped := make([]string, len(headers))
	for i, h := range headers {
		escaped[i] = latexEscape(h)
	}
	b.WriteString(strings.Join(escaped, " & ") + " \\\\\n")
	b.WriteString("\\midrule\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = latexEscape(cell)
		}
		b.WriteString(strings.Join(cells, " & ") + " \\\\\n")
	}

	b.WriteString("\\bottomrule\n")
	b.WriteString("\\end{tabular}\n")
	b.WriteString("\\end{table}\n")

	return b.String()
}

// latexEscape escapes the LaTeX special characters that occur in module
// titles and skill names.
func latexEscape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\textbackslash{}",
		"&", "\\&",
		"%", "\\%",
		"$", "\\$",
		"#", "\\#",
		"_", "\\_",
		"{", "\\{",
		"}", "\\}",
	)
	return replacer.Replace(s)
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

type countEntry struct {
	name  string
	count int
}

// byDescendingCount orders category counts highest first, breaking ties
// by name so output is reproducible.
func byDescendingCount(m map[domain.Category]int) []countEntry {
	entries := make([]countEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, countEntry{name: string(k), count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	return entries
}
