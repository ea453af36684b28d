// Package enrich implements the enrich command: join validated sales
// records with product catalog metadata and save the enriched file.
package enrich

import (
	"context"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/internal/enrichment"

	"github.com/spf13/cobra"
)

var (
	offline   bool
	cacheFile string
)

// Cmd represents the enrich command
var Cmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich sales data with product catalog metadata",
	Long: `Parse and validate a sales data file, fetch the product catalog (or use
the local cache), join each record with its catalog metadata and write the
enriched records to a pipe-delimited file.`,
	Run: enrichFunc,
}

func init() {
	Cmd.Flags().BoolVar(&offline, "offline", false, "Use the local catalog cache instead of the API")
	Cmd.Flags().StringVar(&cacheFile, "cache", "", "Catalog cache file (default from config)")
}

func enrichFunc(cmd *cobra.Command, args []string) {
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

	if cacheFile != "" {
		root.Cfg.Catalog.CacheFile = cacheFile
	}

	mapping := common.LoadCatalog(context.Background(), root.Cfg, offline, logger)
	enriched := enrichment.EnrichTransactions(valid, mapping)

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = root.Cfg.Enriched.OutputFile
	}

	if err := enrichment.SaveEnriched(enriched, outputFile, logger); err != nil {
		root.Log.Fatalf("Failed to save enriched data: %v", err)
	}

	root.Log.WithField("matched", enrichment.MatchedCount(enriched)).
		WithField("total", len(enriched)).
		Info("Enrichment completed successfully!")
}
