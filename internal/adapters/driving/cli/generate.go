package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the skill taxonomy dataset",
	Long: `Runs the taxonomy pipeline over the cached modules: extracts skills
from learning outcomes, consolidates duplicates, groups them into a
two-level taxonomy, and saves the resulting dataset.

Run 'taxo scrape' first to populate the module cache.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if taxonomyService == nil {
		return errors.New("taxonomy service not configured")
	}
	if moduleStore == nil || datasetStore == nil {
		return errors.New("storage not configured")
	}

	ctx := cmd.Context()

	modules, err := moduleStore.ListModules(ctx)
	if err != nil {
		return fmt.Errorf("loading cached modules: %w", err)
	}
	if len(modules) == 0 {
		return errors.New("no cached modules found, run 'taxo scrape' first")
	}

	cmd.Printf("Generating taxonomy from %d modules (%s extraction)...\n",
		len(modules), taxonomyService.ExtractorName())

	dataset, err := taxonomyService.Generate(ctx, modules)
	if err != nil {
		return fmt.Errorf("generating taxonomy: %w", err)
	}

	if err := datasetStore.Save(ctx, dataset); err != nil {
		return fmt.Errorf("saving dataset: %w", err)
	}

	cmd.Printf("Analysed %d modules, extracted %d skills across %d domains.\n",
		dataset.TotalModules, dataset.TotalSkills, len(dataset.Taxonomy.Domains))
	cmd.Printf("Dataset saved to %s\n", datasetStore.Path())

	return nil
}
