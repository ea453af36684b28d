package enrichment

import (
	"sort"
	"strconv"
	"strings"

	"fjacquet/sales-analytics/internal/models"
)

// BuildProductMapping indexes catalog products by their numeric id.
func BuildProductMapping(products []models.CatalogProduct) map[int]models.ProductInfo {
	mapping := make(map[int]models.ProductInfo, len(products))
	for _, p := range products {
		mapping[p.ID] = models.ProductInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}

// ExtractNumericID pulls the numeric part out of a product identifier
// ("P101" → 101). It reports false when the identifier has no digits.
func ExtractNumericID(productID string) (int, bool) {
	var digits strings.Builder
	for _, r := range productID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return id, true
}

// EnrichTransactions joins each transaction with the catalog metadata for
// its numeric product id. Records without a catalog match keep empty
// metadata and APIMatch=false. The input slice is left untouched; the
// result is a parallel slice in the same order.
func EnrichTransactions(transactions []models.Transaction, mapping map[int]models.ProductInfo) []models.EnrichedTransaction {
	enriched := make([]models.EnrichedTransaction, 0, len(transactions))

	for _, t := range transactions {
		e := models.EnrichedTransaction{Transaction: t}

		if id, ok := ExtractNumericID(t.ProductID); ok {
			if info, found := mapping[id]; found {
				rating := info.Rating
				e.APICategory = info.Category
				e.APIBrand = info.Brand
				e.APIRating = &rating
				e.APIMatch = true
			}
		}

		enriched = append(enriched, e)
	}

	return enriched
}

// MatchedCount returns how many enriched records found catalog metadata.
func MatchedCount(enriched []models.EnrichedTransaction) int {
	count := 0
	for _, e := range enriched {
		if e.APIMatch {
			count++
		}
	}
	return count
}

// UnmatchedProductNames returns the distinct product names that failed to
// match the catalog, sorted for deterministic reporting.
func UnmatchedProductNames(enriched []models.EnrichedTransaction) []string {
	set := make(map[string]struct{})
	for _, e := range enriched {
		if !e.APIMatch {
			set[e.ProductName] = struct{}{}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
