// Package cli implements the taxo command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driving"
	"github.com/taxo-labs/taxo-cli/internal/logger"
	"github.com/taxo-labs/taxo-cli/internal/reports"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands run against, wired by Setup.
var (
	scrapeOrchestrator driving.ScrapeOrchestrator
	taxonomyService    driving.TaxonomyService
	taxonomyQuery      driving.TaxonomyQuery
	moduleStore        driven.ModuleStore
	datasetStore       driven.DatasetStore
	configStore        driven.ConfigStore
	reportWriter       *reports.Writer
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "taxo",
	Short: "Build skill taxonomies from university module catalogues",
	Long: `taxo scrapes module descriptors from a university catalogue,
extracts skills from their learning outcomes, and consolidates them
into a two-level skill taxonomy for curriculum analysis.

Typical workflow:
  taxo scrape              # fetch module descriptors into the local cache
  taxo generate            # build the taxonomy dataset from cached modules
  taxo show                # browse the generated taxonomy
  taxo report              # render analysis reports

Or run every stage in one go with 'taxo run'.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Config carries the wired services into the CLI.
type Config struct {
	ScrapeOrchestrator driving.ScrapeOrchestrator
	TaxonomyService    driving.TaxonomyService
	TaxonomyQuery      driving.TaxonomyQuery
	ModuleStore        driven.ModuleStore
	DatasetStore       driven.DatasetStore
	ConfigStore        driven.ConfigStore
	ReportWriter       *reports.Writer
}

// Setup wires the services the commands run against.
func Setup(cfg Config) {
	scrapeOrchestrator = cfg.ScrapeOrchestrator
	taxonomyService = cfg.TaxonomyService
	taxonomyQuery = cfg.TaxonomyQuery
	moduleStore = cfg.ModuleStore
	datasetStore = cfg.DatasetStore
	configStore = cfg.ConfigStore
	reportWriter = cfg.ReportWriter
}

// SetVersion overrides the build-time version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
