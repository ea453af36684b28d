package analytics

import (
	"testing"

	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id, date, productID, name string, quantity int, price string, customerID, region string) models.Transaction {
	p, _ := decimal.NewFromString(price)
	return models.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     productID,
		ProductName:   name,
		Quantity:      quantity,
		UnitPrice:     p,
		CustomerID:    customerID,
		Region:        region,
	}
}

func fixture() []models.Transaction {
	return []models.Transaction{
		tx("T1", "2024-01-02", "P10", "Widget", 5, "10.00", "C1", "North"),  // 50
		tx("T2", "2024-01-01", "P11", "Gadget", 3, "20.00", "C2", "South"),  // 60
		tx("T3", "2024-01-01", "P10", "Widget", 2, "10.00", "C1", "North"),  // 20
		tx("T4", "2024-01-03", "P12", "Gear", 12, "5.00", "C3", "East"),     // 60
		tx("T5", "2024-01-02", "P11", "Gadget", 1, "20.00", "C1", "South"),  // 20
	}
}

func TestTotalRevenue(t *testing.T) {
	total := TotalRevenue(fixture())
	assert.True(t, decimal.NewFromInt(210).Equal(total), "got %s", total)
}

func TestTotalRevenueEmptyInput(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(TotalRevenue(nil)))
}

func TestRegionWiseSales(t *testing.T) {
	regions := RegionWiseSales(fixture())

	require.Len(t, regions, 3)

	// Ordered by total sales descending: South 80, North 70, East 60.
	assert.Equal(t, "South", regions[0].Region)
	assert.True(t, decimal.NewFromInt(80).Equal(regions[0].TotalSales))
	assert.Equal(t, 2, regions[0].TransactionCount)
	assert.Equal(t, "North", regions[1].Region)
	assert.True(t, decimal.NewFromInt(70).Equal(regions[1].TotalSales))
	assert.Equal(t, "East", regions[2].Region)

	// Region totals sum to the grand total and percentages to ~100.
	sum := decimal.Zero
	pctSum := decimal.Zero
	for _, r := range regions {
		sum = sum.Add(r.TotalSales)
		pctSum = pctSum.Add(r.Percentage)
	}
	assert.True(t, TotalRevenue(fixture()).Equal(sum))

	diff := pctSum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.05)), "percentages sum to %s", pctSum)
}

func TestRegionWiseSalesZeroGrandTotal(t *testing.T) {
	// Hard validation normally excludes zero-price records, but the
	// aggregation itself must still be division-safe.
	transactions := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Widget", 1, "0.00", "C1", "North"),
	}

	regions := RegionWiseSales(transactions)

	require.Len(t, regions, 1)
	assert.True(t, decimal.Zero.Equal(regions[0].Percentage))
}

func TestTopSellingProducts(t *testing.T) {
	top := TopSellingProducts(fixture(), 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Gear", top[0].Name)
	assert.Equal(t, 12, top[0].Quantity)
	assert.True(t, decimal.NewFromInt(60).Equal(top[0].Revenue))
	assert.Equal(t, "Widget", top[1].Name)
	assert.Equal(t, 7, top[1].Quantity)
}

func TestTopSellingProductsTieKeepsFirstSeenOrder(t *testing.T) {
	transactions := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Alpha", 5, "1.00", "C1", "North"),
		tx("T2", "2024-01-01", "P11", "Beta", 5, "2.00", "C2", "North"),
	}

	top := TopSellingProducts(transactions, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "Alpha", top[0].Name)
	assert.Equal(t, "Beta", top[1].Name)
}

func TestTopSellingProductsDefaultN(t *testing.T) {
	var transactions []models.Transaction
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		transactions = append(transactions,
			tx("T1", "2024-01-01", "P1", name, len(names)-i, "1.00", "C1", "North"))
	}

	top := TopSellingProducts(transactions, 0)

	assert.Len(t, top, DefaultTopProducts)
}

func TestLowPerformingProducts(t *testing.T) {
	low := LowPerformingProducts(fixture(), 10)

	// Widget 7, Gadget 4 are below 10; Gear 12 is not. Ascending order.
	require.Len(t, low, 2)
	assert.Equal(t, "Gadget", low[0].Name)
	assert.Equal(t, 4, low[0].Quantity)
	assert.Equal(t, "Widget", low[1].Name)
	assert.Equal(t, 7, low[1].Quantity)
}

func TestLowPerformingProductsStrictBoundary(t *testing.T) {
	below := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Widget", 5, "1.00", "C1", "North"),
	}
	atBoundary := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Widget", 10, "1.00", "C1", "North"),
	}

	assert.Len(t, LowPerformingProducts(below, 10), 1)
	assert.Empty(t, LowPerformingProducts(atBoundary, 10), "quantity == threshold is excluded")
}

func TestProductPartitionAtThreshold(t *testing.T) {
	transactions := fixture()
	threshold := 10

	low := LowPerformingProducts(transactions, threshold)
	all := TopSellingProducts(transactions, len(transactions))

	lowNames := make(map[string]bool)
	for _, p := range low {
		assert.Less(t, p.Quantity, threshold)
		lowNames[p.Name] = true
	}

	// Every product lands in exactly one bucket and quantities sum to the
	// grand total quantity.
	totalQuantity := 0
	for _, p := range all {
		if p.Quantity < threshold {
			assert.True(t, lowNames[p.Name], "%s missing from low bucket", p.Name)
		} else {
			assert.False(t, lowNames[p.Name], "%s must not be in low bucket", p.Name)
		}
		totalQuantity += p.Quantity
	}

	wantQuantity := 0
	for _, t := range transactions {
		wantQuantity += t.Quantity
	}
	assert.Equal(t, wantQuantity, totalQuantity)
}

func TestCustomerAnalysis(t *testing.T) {
	customers := CustomerAnalysis(fixture())

	require.Len(t, customers, 3)

	// C1 spent 90, C2 60, C3 60; C2 before C3 by first-seen stability.
	assert.Equal(t, "C1", customers[0].CustomerID)
	assert.True(t, decimal.NewFromInt(90).Equal(customers[0].TotalSpent))
	assert.Equal(t, 3, customers[0].PurchaseCount)
	assert.True(t, decimal.NewFromInt(30).Equal(customers[0].AvgOrderValue))
	assert.Equal(t, []string{"Gadget", "Widget"}, customers[0].Products)

	assert.Equal(t, "C2", customers[1].CustomerID)
	assert.Equal(t, "C3", customers[2].CustomerID)
}

func TestCustomerAnalysisAvgRounding(t *testing.T) {
	transactions := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Widget", 1, "10.00", "C1", "North"),
		tx("T2", "2024-01-01", "P10", "Widget", 1, "10.00", "C1", "North"),
		tx("T3", "2024-01-01", "P10", "Widget", 1, "5.00", "C1", "North"),
	}

	customers := CustomerAnalysis(transactions)

	require.Len(t, customers, 1)
	// 25 / 3 = 8.333... rounds to 8.33
	assert.Equal(t, "8.33", customers[0].AvgOrderValue.StringFixed(2))
}

func TestDailySalesTrendSortedAscending(t *testing.T) {
	transactions := []models.Transaction{
		tx("T1", "2024-01-02", "P10", "Widget", 1, "10.00", "C1", "North"),
		tx("T2", "2024-01-01", "P11", "Gadget", 1, "10.00", "C2", "North"),
	}

	trend := DailySalesTrend(transactions)

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-01-01", trend[0].Date)
	assert.Equal(t, "2024-01-02", trend[1].Date)
}

func TestDailySalesTrendUniqueCustomers(t *testing.T) {
	trend := DailySalesTrend(fixture())

	require.Len(t, trend, 3)

	// 2024-01-01: T2 (C2) + T3 (C1) → 2 unique customers, revenue 80.
	assert.Equal(t, "2024-01-01", trend[0].Date)
	assert.True(t, decimal.NewFromInt(80).Equal(trend[0].Revenue))
	assert.Equal(t, 2, trend[0].TransactionCount)
	assert.Equal(t, 2, trend[0].UniqueCustomers)

	// 2024-01-02: T1 (C1) + T5 (C1) → 1 unique customer.
	assert.Equal(t, "2024-01-02", trend[1].Date)
	assert.Equal(t, 1, trend[1].UniqueCustomers)
}

func TestFindPeakSalesDayFirstMaxWins(t *testing.T) {
	transactions := []models.Transaction{
		tx("T1", "2024-01-01", "P10", "Widget", 1, "100.00", "C1", "North"), // day A: 100
		tx("T2", "2024-01-02", "P10", "Widget", 1, "150.00", "C1", "North"), // day B: 150
		tx("T3", "2024-01-03", "P10", "Widget", 1, "150.00", "C1", "North"), // day C: 150
	}

	peak := FindPeakSalesDay(transactions)

	assert.Equal(t, "2024-01-02", peak.Date, "first day to reach the max wins the tie")
	assert.True(t, decimal.NewFromInt(150).Equal(peak.Revenue))
	assert.Equal(t, 1, peak.TransactionCount)
}

func TestFindPeakSalesDayEmptyInput(t *testing.T) {
	peak := FindPeakSalesDay(nil)

	assert.Equal(t, "", peak.Date)
	assert.True(t, decimal.Zero.Equal(peak.Revenue))
	assert.Equal(t, 0, peak.TransactionCount)
}

func TestAggregationsAgreeOnRevenue(t *testing.T) {
	transactions := fixture()
	total := TotalRevenue(transactions)

	regionSum := decimal.Zero
	for _, r := range RegionWiseSales(transactions) {
		regionSum = regionSum.Add(r.TotalSales)
	}
	assert.True(t, total.Equal(regionSum))

	productSum := decimal.Zero
	for _, p := range TopSellingProducts(transactions, len(transactions)) {
		productSum = productSum.Add(p.Revenue)
	}
	assert.True(t, total.Equal(productSum))

	customerSum := decimal.Zero
	for _, c := range CustomerAnalysis(transactions) {
		customerSum = customerSum.Add(c.TotalSpent)
	}
	assert.True(t, total.Equal(customerSum))

	daySum := decimal.Zero
	for _, d := range DailySalesTrend(transactions) {
		daySum = daySum.Add(d.Revenue)
	}
	assert.True(t, total.Equal(daySum))
}

func TestAggregationsReturnFreshResults(t *testing.T) {
	transactions := fixture()

	first := RegionWiseSales(transactions)
	first[0].TotalSales = decimal.NewFromInt(-1)

	second := RegionWiseSales(transactions)
	assert.True(t, decimal.NewFromInt(80).Equal(second[0].TotalSales),
		"mutating a result must not affect later calls")
}
