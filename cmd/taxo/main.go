// Command taxo builds skill taxonomies from university module catalogues.
package main

import (
	"fmt"
	"os"

	"github.com/taxo-labs/taxo-cli/internal/adapters/driven/config/file"
	"github.com/taxo-labs/taxo-cli/internal/adapters/driven/llm/anthropic"
	filestore "github.com/taxo-labs/taxo-cli/internal/adapters/driven/storage/file"
	"github.com/taxo-labs/taxo-cli/internal/adapters/driven/storage/sqlite"
	"github.com/taxo-labs/taxo-cli/internal/adapters/driving/cli"
	"github.com/taxo-labs/taxo-cli/internal/connectors/ucd"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/core/services"
	"github.com/taxo-labs/taxo-cli/internal/logger"
	"github.com/taxo-labs/taxo-cli/internal/reports"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	moduleStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening module cache: %w", err)
	}
	defer moduleStore.Close()

	datasetStore, err := filestore.NewDatasetStore("")
	if err != nil {
		return fmt.Errorf("initialising dataset store: %w", err)
	}

	catalogue := ucd.New(ucd.Config{
		Term:        configStore.GetString("scrape.term"),
		ModulesFile: configStore.GetString("scrape.modules_file"),
		TestMode:    configStore.GetBool("scrape.test_mode"),
	})
	defer catalogue.Close()

	extract := services.NewExtractService(buildExtractor(configStore))

	cli.Setup(cli.Config{
		ScrapeOrchestrator: services.NewScrapeService(catalogue, moduleStore),
		TaxonomyService:    services.NewTaxonomyBuilder(extract),
		TaxonomyQuery:      services.NewQueryService(datasetStore),
		ModuleStore:        moduleStore,
		DatasetStore:       datasetStore,
		ConfigStore:        configStore,
		ReportWriter:       reports.NewWriter(""),
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// buildExtractor picks LLM-based extraction when an API key is
// configured, falling back to the keyword rules otherwise.
func buildExtractor(configStore driven.ConfigStore) driven.SkillExtractor {
	apiKey := configStore.GetString("anthropic.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return services.NewRuleExtractor()
	}

	llm, err := anthropic.NewLLMService(anthropic.Config{
		APIKey: apiKey,
		Model:  configStore.GetString("anthropic.model"),
	})
	if err != nil {
		logger.Warn("LLM extraction unavailable (%v), using keyword rules", err)
		return services.NewRuleExtractor()
	}
	return anthropic.NewSkillExtractor(llm)
}
