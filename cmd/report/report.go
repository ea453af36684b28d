// Package report implements the report command: run the whole pipeline and
// write the formatted sales analytics report.
package report

import (
	"context"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/internal/enrichment"
	"fjacquet/sales-analytics/internal/report"

	"github.com/spf13/cobra"
)

var offline bool

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the sales analytics report",
	Long: `Parse, validate and filter a sales data file, enrich the records with
product catalog metadata and write the formatted text report.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().BoolVar(&offline, "offline", false, "Use the local catalog cache instead of the API")
}

func reportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	opts, err := root.FilterOptionsFromFlags()
	if err != nil {
		root.Log.Fatalf("Invalid filter flags: %v", err)
	}

	valid, _, _, err := common.LoadValidTransactions(root.SharedFlags.Input, root.Cfg, opts, logger)
	if err != nil {
		root.Log.Fatalf("Failed to load sales data: %v", err)
	}

	mapping := common.LoadCatalog(context.Background(), root.Cfg, offline, logger)
	enriched := enrichment.EnrichTransactions(valid, mapping)

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = root.Cfg.Report.OutputFile
	}

	generator := report.NewGenerator(root.Cfg.Report.CurrencySymbol, logger)
	if err := generator.WriteFile(outputFile, valid, enriched); err != nil {
		root.Log.Fatalf("Failed to generate report: %v", err)
	}

	root.Log.WithField("output_file", outputFile).Info("Sales report generated successfully!")
}
