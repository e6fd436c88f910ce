package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxo-labs/taxo-cli/internal/reports"
)

var reportDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render analysis reports for the generated dataset",
	Long: `Renders the generated dataset into analysis artefacts: summary
statistics as JSON, module and skill frequency tables as CSV and LaTeX,
and a human-readable text report.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", "", "report output directory (default \"reports\")")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if datasetStore == nil {
		return errors.New("storage not configured")
	}

	dataset, err := datasetStore.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	writer := reportWriter
	if reportDir != "" {
		writer = reports.NewWriter(reportDir)
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
