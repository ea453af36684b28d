// Package analyze implements the analyze command: parse, validate/filter
// and print the descriptive analytics for a sales data file.
package analyze

import (
	"fmt"
	"strings"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/internal/analytics"

	"github.com/spf13/cobra"
)

var (
	topN         int
	lowThreshold int
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a sales data file",
	Long: `Parse and validate a pipe-delimited sales data file, apply the optional
region and amount filters, and print revenue analytics.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().IntVar(&topN, "top", 0, "Number of top products to show (default from config)")
	Cmd.Flags().IntVar(&lowThreshold, "threshold", 0, "Quantity threshold for low-performing products (default from config)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	opts, err := root.FilterOptionsFromFlags()
	if err != nil {
		root.Log.Fatalf("Invalid filter flags: %v", err)
	}

	if topN <= 0 {
		topN = root.Cfg.Analytics.TopProducts
	}
	if lowThreshold <= 0 {
		lowThreshold = root.Cfg.Analytics.LowQuantityThreshold
	}

	valid, stats, result, err := common.LoadValidTransactions(root.SharedFlags.Input, root.Cfg, opts, logger)
	if err != nil {
		root.Log.Fatalf("Failed to load sales data: %v", err)
	}

	symbol := root.Cfg.Report.CurrencySymbol

	fmt.Printf("Raw records parsed: %d (dropped %d)\n", stats.TotalLines, stats.Dropped)
	fmt.Println("\nValidation & Filter Summary:")
	fmt.Printf("  total_input:        %d\n", result.Summary.TotalInput)
	fmt.Printf("  invalid:            %d\n", result.Summary.Invalid)
	fmt.Printf("  filtered_by_region: %d\n", result.Summary.FilteredByRegion)
	fmt.Printf("  filtered_by_amount: %d\n", result.Summary.FilteredByAmount)
	fmt.Printf("  final_count:        %d\n", result.Summary.FinalCount)

	if len(result.Info.Regions) > 0 {
		fmt.Printf("\nAvailable regions: %s\n", strings.Join(result.Info.Regions, ", "))
	}
	if result.Info.HasAmounts {
		fmt.Printf("Transaction amount range: %s - %s\n",
			result.Info.MinAmount.StringFixed(2), result.Info.MaxAmount.StringFixed(2))
	}

	fmt.Printf("\nTotal Revenue: %s%s\n", symbol, analytics.TotalRevenue(valid).StringFixed(2))

	fmt.Println("\nRegion-wise sales:")
	for _, r := range analytics.RegionWiseSales(valid) {
		fmt.Printf("  %-10s %s%-12s %6s%%  (%d txns)\n",
			r.Region, symbol, r.TotalSales.StringFixed(2), r.Percentage.StringFixed(2), r.TransactionCount)
	}

	fmt.Printf("\nTop %d products by quantity:\n", topN)
	for i, p := range analytics.TopSellingProducts(valid, topN) {
		fmt.Printf("  %d. %-25s qty=%-6d revenue=%s%s\n", i+1, p.Name, p.Quantity, symbol, p.Revenue.StringFixed(2))
	}

	fmt.Println("\nTop customers:")
	for _, c := range analytics.CustomerAnalysis(valid) {
		fmt.Printf("  %-10s spent=%s%-12s orders=%-4d avg=%s%s products=%s\n",
			c.CustomerID, symbol, c.TotalSpent.StringFixed(2), c.PurchaseCount,
			symbol, c.AvgOrderValue.StringFixed(2), strings.Join(c.Products, ", "))
	}

	fmt.Println("\nDaily sales trend:")
	for _, d := range analytics.DailySalesTrend(valid) {
		fmt.Printf("  %s  revenue=%s%-12s txns=%-4d customers=%d\n",
			d.Date, symbol, d.Revenue.StringFixed(2), d.TransactionCount, d.UniqueCustomers)
	}

	peak := analytics.FindPeakSalesDay(valid)
	if peak.Date != "" {
		fmt.Printf("\nPeak sales day: %s (%s%s, %d txns)\n",
			peak.Date, symbol, peak.Revenue.StringFixed(2), peak.TransactionCount)
	}

	low := analytics.LowPerformingProducts(valid, lowThreshold)
	fmt.Printf("\nLow-performing products (quantity < %d):\n", lowThreshold)
	for _, p := range low {
		fmt.Printf("  %-25s qty=%-6d revenue=%s%s\n", p.Name, p.Quantity, symbol, p.Revenue.StringFixed(2))
	}
	if len(low) == 0 {
		fmt.Println("  none")
	}
}
