// Package report renders the formatted sales analytics report. All figures
// come from the analytics package so the report can never disagree with the
// numbers the rest of the pipeline computes.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/sales-analytics/internal/analytics"
	"fjacquet/sales-analytics/internal/enrichment"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sectionWidth = 60
	topEntries   = 5
)

// Generator renders sales reports.
type Generator struct {
	currencySymbol string
	logger         logging.Logger
	now            func() time.Time
	newID          func() string
}

// NewGenerator creates a report generator using the given display currency
// symbol.
func NewGenerator(currencySymbol string, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if currencySymbol == "" {
		currencySymbol = "₹"
	}
	return &Generator{
		currencySymbol: currencySymbol,
		logger:         logger,
		now:            time.Now,
		newID:          func() string { return uuid.New().String() },
	}
}

// Write renders the full report for the given valid and enriched
// transaction sets.
func (g *Generator) Write(w io.Writer, transactions []models.Transaction, enriched []models.EnrichedTransaction) error {
	var b strings.Builder

	g.writeHeader(&b, len(transactions))
	g.writeOverallSummary(&b, transactions)
	g.writeRegionPerformance(&b, transactions)
	g.writeTopProducts(&b, transactions)
	g.writeTopCustomers(&b, transactions)
	g.writeDailyTrend(&b, transactions)
	g.writeBestDay(&b, transactions)
	g.writeEnrichmentSummary(&b, enriched)

	b.WriteString("\n--- END OF REPORT ---\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// WriteFile renders the report to a file, creating parent directories as
// needed.
func (g *Generator) WriteFile(outputFile string, transactions []models.Transaction, enriched []models.EnrichedTransaction) error {
	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(outputFile) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close report file")
		}
	}()

	if err := g.Write(file, transactions, enriched); err != nil {
		return err
	}

	g.logger.Info("Generated sales report",
		logging.Field{Key: logging.FieldOutput, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return nil
}

func (g *Generator) money(d decimal.Decimal) string {
	return g.currencySymbol + d.StringFixed(2)
}

func divider(b *strings.Builder, char string) {
	b.WriteString(strings.Repeat(char, sectionWidth))
	b.WriteString("\n")
}

func (g *Generator) writeHeader(b *strings.Builder, recordCount int) {
	divider(b, "=")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(b, "     Report ID: %s\n", g.newID())
	fmt.Fprintf(b, "     Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "     Records Processed: %d\n", recordCount)
	divider(b, "=")
	b.WriteString("\n")
}

func (g *Generator) writeOverallSummary(b *strings.Builder, transactions []models.Transaction) {
	totalRevenue := analytics.TotalRevenue(transactions)
	count := len(transactions)

	avgOrder := decimal.Zero
	if count > 0 {
		avgOrder = totalRevenue.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	startDate, endDate := dateRange(transactions)

	b.WriteString("OVERALL SUMMARY\n")
	divider(b, "-")
	fmt.Fprintf(b, "Total Revenue:        %s\n", g.money(totalRevenue))
	fmt.Fprintf(b, "Total Transactions:   %d\n", count)
	fmt.Fprintf(b, "Average Order Value:  %s\n", g.money(avgOrder))
	fmt.Fprintf(b, "Date Range:           %s to %s\n\n", startDate, endDate)
}

func (g *Generator) writeRegionPerformance(b *strings.Builder, transactions []models.Transaction) {
	b.WriteString("REGION-WISE PERFORMANCE\n")
	divider(b, "-")
	fmt.Fprintf(b, "%-10s%15s%12s%10s\n", "Region", "Sales", "% Total", "Txns")
	for _, r := range analytics.RegionWiseSales(transactions) {
		fmt.Fprintf(b, "%-10s%15s%11s%%%10d\n",
			r.Region, g.money(r.TotalSales), r.Percentage.StringFixed(2), r.TransactionCount)
	}
	b.WriteString("\n")
}

func (g *Generator) writeTopProducts(b *strings.Builder, transactions []models.Transaction) {
	fmt.Fprintf(b, "TOP %d PRODUCTS\n", topEntries)
	divider(b, "-")
	fmt.Fprintf(b, "%-5s%-25s%8s%15s\n", "Rank", "Product", "Qty", "Revenue")
	for i, p := range analytics.TopSellingProducts(transactions, topEntries) {
		fmt.Fprintf(b, "%-5d%-25s%8d%15s\n", i+1, p.Name, p.Quantity, g.money(p.Revenue))
	}
	b.WriteString("\n")
}

func (g *Generator) writeTopCustomers(b *strings.Builder, transactions []models.Transaction) {
	fmt.Fprintf(b, "TOP %d CUSTOMERS\n", topEntries)
	divider(b, "-")
	fmt.Fprintf(b, "%-5s%-15s%15s%10s\n", "Rank", "Customer", "Spent", "Orders")
	customers := analytics.CustomerAnalysis(transactions)
	if len(customers) > topEntries {
		customers = customers[:topEntries]
	}
	for i, c := range customers {
		fmt.Fprintf(b, "%-5d%-15s%15s%10d\n", i+1, c.CustomerID, g.money(c.TotalSpent), c.PurchaseCount)
	}
	b.WriteString("\n")
}

func (g *Generator) writeDailyTrend(b *strings.Builder, transactions []models.Transaction) {
	b.WriteString("DAILY SALES TREND\n")
	divider(b, "-")
	fmt.Fprintf(b, "%-12s%15s%8s%12s\n", "Date", "Revenue", "Txns", "Customers")
	for _, d := range analytics.DailySalesTrend(transactions) {
		fmt.Fprintf(b, "%-12s%15s%8d%12d\n",
			d.Date, g.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")
}

func (g *Generator) writeBestDay(b *strings.Builder, transactions []models.Transaction) {
	peak := analytics.FindPeakSalesDay(transactions)

	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	divider(b, "-")
	if peak.Date == "" {
		b.WriteString("Best Selling Day: n/a\n\n")
		return
	}
	fmt.Fprintf(b, "Best Selling Day: %s (%s)\n\n", peak.Date, g.money(peak.Revenue))
}

func (g *Generator) writeEnrichmentSummary(b *strings.Builder, enriched []models.EnrichedTransaction) {
	matched := enrichment.MatchedCount(enriched)
	failed := enrichment.UnmatchedProductNames(enriched)

	successRate := decimal.Zero
	if len(enriched) > 0 {
		successRate = decimal.NewFromInt(int64(matched)).
			Div(decimal.NewFromInt(int64(len(enriched)))).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	b.WriteString("API ENRICHMENT SUMMARY\n")
	divider(b, "-")
	fmt.Fprintf(b, "Total Enriched: %d\n", matched)
	fmt.Fprintf(b, "Success Rate:  %s%%\n", successRate.StringFixed(2))
	b.WriteString("Failed Products:\n")
	for _, name := range failed {
		fmt.Fprintf(b, " - %s\n", name)
	}
}

// dateRange returns the lexicographic min and max dates of the set; dates
// are YYYY-MM-DD strings so this is chronological.
func dateRange(transactions []models.Transaction) (string, string) {
	if len(transactions) == 0 {
		return "n/a", "n/a"
	}
	start, end := transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date < start {
			start = t.Date
		}
		if t.Date > end {
			end = t.Date
		}
	}
	return start, end
}
