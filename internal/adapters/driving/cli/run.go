package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
	"github.com/taxo-labs/taxo-cli/internal/reports"
)

var (
	runSkipScrape bool
	runMaxModules int
	runTerm       string
	runReportDir  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: scrape, generate, report",
	Long: `Runs every pipeline stage in sequence: scrapes the catalogue,
generates the taxonomy dataset from the scraped modules, and renders the
analysis reports.

With --skip-scrape the scrape stage is skipped and the taxonomy is
generated from the cached modules instead.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&runSkipScrape, "skip-scrape", false, "use cached modules instead of scraping")
	runCmd.Flags().IntVarP(&runMaxModules, "max-modules", "m", 0, "stop scraping after finding this many modules (0 = unlimited)")
	runCmd.Flags().StringVarP(&runTerm, "term", "t", "", "academic term code (e.g. 202500)")
	runCmd.Flags().StringVarP(&runReportDir, "report-dir", "d", "", "report output directory (default \"reports\")")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	if taxonomyService == nil {
		return errors.New("taxonomy service not configured")
	}
	if moduleStore == nil || datasetStore == nil {
		return errors.New("storage not configured")
	}

	ctx := cmd.Context()

	var modules []domain.Module
	if runSkipScrape {
		cached, err := moduleStore.ListModules(ctx)
		if err != nil {
			return fmt.Errorf("loading cached modules: %w", err)
		}
		if len(cached) == 0 {
			return errors.New("no cached modules found, run without --skip-scrape first")
		}
		cmd.Printf("Using %d cached modules.\n", len(cached))
		modules = cached
	} else {
		if scrapeOrchestrator == nil {
			return errors.New("scrape service not configured")
		}
		cmd.Println("Scraping module catalogue...")
		summary, err := scrapeOrchestrator.Scrape(ctx, driving.ScrapeOptions{
			MaxModules: runMaxModules,
			Term:       runTerm,
		})
		if err != nil {
			return fmt.Errorf("scrape failed: %w", err)
		}
		cmd.Printf("Tried %d candidate codes, found %d modules (%d with learning outcomes).\n",
			summary.CodesTried, len(summary.Modules), summary.WithOutcomes)
		if len(summary.Modules) == 0 {
			return errors.New("no modules found in the catalogue")
		}
		modules = summary.Modules
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

	writer := reportWriter
	if runReportDir != "" {
		writer = reports.NewWriter(runReportDir)
	}
	if writer == nil {
		writer = reports.NewWriter("")
	}
	if err := writer.WriteAll(dataset); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}
	cmd.Printf("Analysis reports written to %s/\n", writer.Dir())

	return nil
}
