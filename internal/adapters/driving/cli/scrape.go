package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
)

var (
	scrapeMaxModules int
	scrapeTerm       string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch module descriptors from the catalogue",
	Long: `Fetches module descriptors from the university catalogue and caches
them locally. Candidate module codes come from a modules.txt file when
present, or are generated from the catalogue's naming patterns.

Modules that do not exist in the catalogue are skipped silently;
individual fetch failures are logged and skipped.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().IntVarP(&scrapeMaxModules, "max-modules", "m", 0, "stop after finding this many modules (0 = unlimited)")
	scrapeCmd.Flags().StringVarP(&scrapeTerm, "term", "t", "", "academic term code (e.g. 202500)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	if scrapeOrchestrator == nil {
		return errors.New("scrape service not configured")
	}

	cmd.Println("Scraping module catalogue...")

	summary, err := scrapeOrchestrator.Scrape(cmd.Context(), driving.ScrapeOptions{
		MaxModules: scrapeMaxModules,
		Term:       scrapeTerm,
	})
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	cmd.Printf("Tried %d candidate codes, found %d modules (%d with learning outcomes).\n",
		summary.CodesTried, len(summary.Modules), summary.WithOutcomes)
	for _, m := range summary.Modules {
		cmd.Printf("  %s  %s\n", m.Code, m.Title)
	}

	return nil
}
