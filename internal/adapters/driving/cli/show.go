package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// Styles for taxonomy display.
var (
	domainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	subCategoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#06B6D4")).
				Bold(true)

	skillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Browse the generated taxonomy",
	Long: `Displays the generated skill taxonomy as a tree of domains,
sub-categories, and consolidated skills.

Use the subcommands to inspect a single skill or module.`,
	RunE: runShowTaxonomy,
}

var showSkillCmd = &cobra.Command{
	Use:   "skill [name]",
	Short: "Look up skills by name",
	Long: `Finds consolidated skills whose name contains the given text,
case-insensitively, and shows where they sit in the taxonomy.`,
	Args: cobra.ExactArgs(1),
	RunE: runShowSkill,
}

var showModuleCmd = &cobra.Command{
	Use:   "module [code]",
	Short: "Show one module and its extracted skills",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowModule,
}

func init() {
	showCmd.AddCommand(showSkillCmd)
	showCmd.AddCommand(showModuleCmd)
	rootCmd.AddCommand(showCmd)
}

func runShowTaxonomy(cmd *cobra.Command, _ []string) error {
	if taxonomyQuery == nil {
		return errors.New("query service not configured")
	}

	dataset, err := taxonomyQuery.Dataset(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoDataset) {
			return errors.New("no dataset found, run 'taxo generate' first")
		}
		return fmt.Errorf("loading dataset: %w", err)
	}

	cmd.Printf("Skill taxonomy: %d skills from %d modules\n\n",
		dataset.TotalSkills, dataset.TotalModules)

	for _, d := range dataset.Taxonomy.Domains {
		cmd.Println(domainStyle.Render(d.Name) + mutedStyle.Render("  ("+d.Description+")"))
		for _, sc := range d.SubCategories {
			cmd.Printf("  %s %s\n",
				subCategoryStyle.Render(sc.Name),
				mutedStyle.Render(fmt.Sprintf("[%d skills]", len(sc.Skills))))
			for _, s := range sc.Skills {
				cmd.Printf("    %s %s\n",
					skillStyle.Render(s.Name),
					mutedStyle.Render(fmt.Sprintf("(%d modules, %s)",
						len(s.AppearsInModules), joinBloomLevels(s.BloomLevels))))
			}
		}
		cmd.Println()
	}

	return nil
}

func runShowSkill(cmd *cobra.Command, args []string) error {
	if taxonomyQuery == nil {
		return errors.New("query service not configured")
	}

	matches, err := taxonomyQuery.LookupSkill(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNoDataset) {
			return errors.New("no dataset found, run 'taxo generate' first")
		}
		return fmt.Errorf("looking up skill: %w", err)
	}

	if len(matches) == 0 {
		cmd.Printf("No skills matching %q.\n", args[0])
		return nil
	}

	for _, m := range matches {
		cmd.Println(skillStyle.Render(m.Skill.Name))
		cmd.Printf("  Taxonomy: %s > %s\n",
			domainStyle.Render(m.Domain), subCategoryStyle.Render(m.SubCategory))
		cmd.Printf("  Modules: %s\n", strings.Join(m.Skill.AppearsInModules, ", "))
		cmd.Printf("  Bloom levels: %s\n", joinBloomLevels(m.Skill.BloomLevels))
		cmd.Printf("  Proficiency: %s\n", joinProficiencies(m.Skill.ProficiencyLevels))
		cmd.Println()
	}

	return nil
}

func runShowModule(cmd *cobra.Command, args []string) error {
	if taxonomyQuery == nil {
		return errors.New("query service not configured")
	}

	m, err := taxonomyQuery.Module(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNoDataset) {
			return errors.New("no dataset found, run 'taxo generate' first")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("module %s not found in the dataset", args[0])
		}
		return fmt.Errorf("loading module: %w", err)
	}

	cmd.Println(domainStyle.Render(m.Code) + " " + skillStyle.Render(m.Title))
	if m.Level > 0 {
		cmd.Printf("  Level %d, %d credits\n", m.Level, m.Credits)
	}
	if m.Coordinator != "" {
		cmd.Printf("  Coordinator: %s\n", m.Coordinator)
	}
	if m.Description != "" {
		cmd.Printf("  %s\n", m.Description)
	}

	cmd.Printf("\nLearning outcomes (%d):\n", len(m.LearningOutcomes))
	for i, outcome := range m.LearningOutcomes {
		cmd.Printf("  %d. %s\n", i+1, outcome)
	}

	cmd.Printf("\nExtracted skills (%d):\n", len(m.ExtractedSkills))
	for _, s := range m.ExtractedSkills {
		cmd.Printf("  %s %s\n",
			skillStyle.Render(s.SkillName),
			mutedStyle.Render(fmt.Sprintf("(%s/%s, %s)", s.Category, s.SkillType, s.BloomsLevel)))
	}

	return nil
}

func joinBloomLevels(levels []domain.BloomLevel) string {
	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ", ")
}

func joinProficiencies(levels []domain.Proficiency) string {
	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ", ")
}
