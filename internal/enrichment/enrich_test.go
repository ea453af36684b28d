package enrichment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumericID(t *testing.T) {
	tests := []struct {
		productID string
		want      int
		ok        bool
	}{
		{"P101", 101, true},
		{"P0", 0, true},
		{"PX-20-B3", 203, true},
		{"PRODUCT", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractNumericID(tt.productID)
		assert.Equal(t, tt.ok, ok, "id %q", tt.productID)
		assert.Equal(t, tt.want, got, "id %q", tt.productID)
	}
}

func TestBuildProductMapping(t *testing.T) {
	products := []models.CatalogProduct{
		{ID: 1, Title: "Essence Mascara", Category: "beauty", Brand: "Essence", Price: 9.99, Rating: 4.94},
		{ID: 2, Title: "Eyeshadow Palette", Category: "beauty", Brand: "Glamour", Price: 19.99, Rating: 3.28},
	}

	mapping := BuildProductMapping(products)

	require.Len(t, mapping, 2)
	assert.Equal(t, "Essence", mapping[1].Brand)
	assert.Equal(t, "beauty", mapping[2].Category)
	assert.InDelta(t, 3.28, mapping[2].Rating, 0.001)
}

func testTx(productID, name string) models.Transaction {
	return models.Transaction{
		TransactionID: "T1",
		Date:          "2024-01-01",
		ProductID:     productID,
		ProductName:   name,
		Quantity:      1,
		UnitPrice:     decimal.NewFromInt(10),
		CustomerID:    "C1",
		Region:        "North",
	}
}

func TestEnrichTransactions(t *testing.T) {
	mapping := map[int]models.ProductInfo{
		10: {Title: "Widget", Category: "tools", Brand: "Acme", Rating: 4.5},
	}
	transactions := []models.Transaction{
		testTx("P10", "Widget"),
		testTx("P99", "Gadget"),
		testTx("PXX", "Gear"),
	}

	enriched := EnrichTransactions(transactions, mapping)

	require.Len(t, enriched, 3)

	assert.True(t, enriched[0].APIMatch)
	assert.Equal(t, "tools", enriched[0].APICategory)
	assert.Equal(t, "Acme", enriched[0].APIBrand)
	require.NotNil(t, enriched[0].APIRating)
	assert.InDelta(t, 4.5, *enriched[0].APIRating, 0.001)

	assert.False(t, enriched[1].APIMatch, "unknown id is no match")
	assert.Nil(t, enriched[1].APIRating)

	assert.False(t, enriched[2].APIMatch, "id without digits is no match")

	// The input slice is untouched and order is preserved.
	assert.Equal(t, "P10", transactions[0].ProductID)
	assert.Equal(t, "Gear", enriched[2].ProductName)
}

func TestMatchedCountAndUnmatchedNames(t *testing.T) {
	mapping := map[int]models.ProductInfo{10: {Title: "Widget"}}
	transactions := []models.Transaction{
		testTx("P10", "Widget"),
		testTx("P99", "Zeta"),
		testTx("P98", "Alpha"),
		testTx("P99", "Zeta"),
	}

	enriched := EnrichTransactions(transactions, mapping)

	assert.Equal(t, 1, MatchedCount(enriched))
	assert.Equal(t, []string{"Alpha", "Zeta"}, UnmatchedProductNames(enriched))
}

func TestSaveEnriched(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "out", "enriched.txt")

	mapping := map[int]models.ProductInfo{10: {Title: "Widget", Category: "tools", Brand: "Acme", Rating: 4.5}}
	enriched := EnrichTransactions([]models.Transaction{
		testTx("P10", "Widget"),
		testTx("P99", "Gadget"),
	}, mapping)

	err := SaveEnriched(enriched, outputPath, &logging.MockLogger{})
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	text := string(content)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3, "header plus two records")

	assert.Contains(t, lines[0], "TransactionID|")
	assert.Contains(t, lines[0], "API_Category")
	assert.Contains(t, lines[0], "API_Match")
	assert.Contains(t, lines[1], "|tools|Acme|")
	assert.Contains(t, lines[1], "|true")
	assert.Contains(t, lines[2], "|false")
}

func TestSaveEnrichedNilInput(t *testing.T) {
	err := SaveEnriched(nil, filepath.Join(t.TempDir(), "x.txt"), &logging.MockLogger{})
	assert.Error(t, err)
}
