// Package analytics computes the descriptive aggregates the reporting layer
// consumes. Every function is pure: it recomputes line revenue from the
// input records, builds its own accumulators and returns freshly allocated
// results, so repeated calls never interfere with each other.
package analytics

import (
	"sort"

	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// Defaults for the parameterized rankings.
const (
	DefaultTopProducts          = 5
	DefaultLowQuantityThreshold = 10
)

// RegionSales aggregates revenue for one region.
type RegionSales struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal
}

// ProductSales aggregates quantity and revenue for one product.
type ProductSales struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// CustomerStats aggregates purchase behavior for one customer.
type CustomerStats struct {
	CustomerID    string
	TotalSpent    decimal.Decimal
	PurchaseCount int
	AvgOrderValue decimal.Decimal
	Products      []string
}

// DailySales aggregates one day of the sales trend.
type DailySales struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay is the single highest-revenue day of the trend. The zero value
// (empty date, zero revenue) is returned for empty input.
type PeakDay struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
}

// TotalRevenue sums the line revenue of all transactions.
func TotalRevenue(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.LineRevenue())
	}
	return total
}

// RegionWiseSales groups revenue by region, ordered by total sales
// descending. Percentages are of grand-total revenue, rounded to two
// decimal places; a zero grand total yields zero percentages.
func RegionWiseSales(transactions []models.Transaction) []RegionSales {
	grandTotal := TotalRevenue(transactions)

	index := make(map[string]int)
	var regions []RegionSales
	for _, t := range transactions {
		i, seen := index[t.Region]
		if !seen {
			i = len(regions)
			index[t.Region] = i
			regions = append(regions, RegionSales{Region: t.Region, TotalSales: decimal.Zero})
		}
		regions[i].TotalSales = regions[i].TotalSales.Add(t.LineRevenue())
		regions[i].TransactionCount++
	}

	for i := range regions {
		regions[i].Percentage = percentageOf(regions[i].TotalSales, grandTotal)
	}

	sort.SliceStable(regions, func(a, b int) bool {
		return regions[a].TotalSales.GreaterThan(regions[b].TotalSales)
	})

	return regions
}

// TopSellingProducts returns the n products with the highest summed
// quantity, descending. Ties keep first-seen group order. A non-positive n
// falls back to the default of 5.
func TopSellingProducts(transactions []models.Transaction, n int) []ProductSales {
	if n <= 0 {
		n = DefaultTopProducts
	}

	products := groupByProduct(transactions)
	sort.SliceStable(products, func(a, b int) bool {
		return products[a].Quantity > products[b].Quantity
	})

	if len(products) > n {
		products = products[:n]
	}
	return products
}

// LowPerformingProducts returns products whose summed quantity is strictly
// below the threshold, ordered by quantity ascending. A non-positive
// threshold falls back to the default of 10.
func LowPerformingProducts(transactions []models.Transaction, threshold int) []ProductSales {
	if threshold <= 0 {
		threshold = DefaultLowQuantityThreshold
	}

	var low []ProductSales
	for _, p := range groupByProduct(transactions) {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(a, b int) bool {
		return low[a].Quantity < low[b].Quantity
	})

	return low
}

// CustomerAnalysis groups purchases by customer, ordered by total spent
// descending. The distinct product list is sorted so the exposed order is
// deterministic.
func CustomerAnalysis(transactions []models.Transaction) []CustomerStats {
	index := make(map[string]int)
	productSets := make(map[string]map[string]struct{})
	var customers []CustomerStats

	for _, t := range transactions {
		i, seen := index[t.CustomerID]
		if !seen {
			i = len(customers)
			index[t.CustomerID] = i
			customers = append(customers, CustomerStats{CustomerID: t.CustomerID, TotalSpent: decimal.Zero})
			productSets[t.CustomerID] = make(map[string]struct{})
		}
		customers[i].TotalSpent = customers[i].TotalSpent.Add(t.LineRevenue())
		customers[i].PurchaseCount++
		productSets[t.CustomerID][t.ProductName] = struct{}{}
	}

	for i := range customers {
		set := productSets[customers[i].CustomerID]
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		customers[i].Products = names

		count := decimal.NewFromInt(int64(customers[i].PurchaseCount))
		customers[i].AvgOrderValue = customers[i].TotalSpent.Div(count).Round(2)
	}

	sort.SliceStable(customers, func(a, b int) bool {
		return customers[a].TotalSpent.GreaterThan(customers[b].TotalSpent)
	})

	return customers
}

// DailySalesTrend groups revenue by date, ascending. Dates are YYYY-MM-DD
// strings, so lexicographic order is chronological.
func DailySalesTrend(transactions []models.Transaction) []DailySales {
	index := make(map[string]int)
	customerSets := make(map[string]map[string]struct{})
	var days []DailySales

	for _, t := range transactions {
		i, seen := index[t.Date]
		if !seen {
			i = len(days)
			index[t.Date] = i
			days = append(days, DailySales{Date: t.Date, Revenue: decimal.Zero})
			customerSets[t.Date] = make(map[string]struct{})
		}
		days[i].Revenue = days[i].Revenue.Add(t.LineRevenue())
		days[i].TransactionCount++
		customerSets[t.Date][t.CustomerID] = struct{}{}
	}

	for i := range days {
		days[i].UniqueCustomers = len(customerSets[days[i].Date])
	}

	sort.SliceStable(days, func(a, b int) bool {
		return days[a].Date < days[b].Date
	})

	return days
}

// FindPeakSalesDay returns the day with the strictly highest revenue in the
// daily trend. On exact revenue ties the first day scanned wins; empty
// input returns the zero value rather than failing.
func FindPeakSalesDay(transactions []models.Transaction) PeakDay {
	peak := PeakDay{Revenue: decimal.Zero}
	for _, day := range DailySalesTrend(transactions) {
		if day.Revenue.GreaterThan(peak.Revenue) {
			peak = PeakDay{
				Date:             day.Date,
				Revenue:          day.Revenue,
				TransactionCount: day.TransactionCount,
			}
		}
	}
	return peak
}

// groupByProduct folds transactions into per-product quantity and revenue
// accumulators, preserving first-seen group order.
func groupByProduct(transactions []models.Transaction) []ProductSales {
	index := make(map[string]int)
	var products []ProductSales
	for _, t := range transactions {
		i, seen := index[t.ProductName]
		if !seen {
			i = len(products)
			index[t.ProductName] = i
			products = append(products, ProductSales{Name: t.ProductName, Revenue: decimal.Zero})
		}
		products[i].Quantity += t.Quantity
		products[i].Revenue = products[i].Revenue.Add(t.LineRevenue())
	}
	return products
}

// percentageOf computes part/total as a percentage rounded to two decimal
// places, defined as zero when the total is zero.
func percentageOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}
