package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineRevenue(t *testing.T) {
	price, _ := decimal.NewFromString("10.50")
	tx := Transaction{Quantity: 3, UnitPrice: price}

	assert.Equal(t, "31.50", tx.LineRevenue().StringFixed(2))
}

func TestLineRevenueZeroQuantity(t *testing.T) {
	tx := Transaction{Quantity: 0, UnitPrice: decimal.NewFromInt(10)}

	assert.True(t, decimal.Zero.Equal(tx.LineRevenue()))
}

func TestLineRevenueKeepsDecimalPrecision(t *testing.T) {
	// 0.1 * 3 must be exactly 0.3, not a float approximation.
	price, _ := decimal.NewFromString("0.1")
	tx := Transaction{Quantity: 3, UnitPrice: price}

	want, _ := decimal.NewFromString("0.3")
	assert.True(t, want.Equal(tx.LineRevenue()))
}

func TestHasAmountFilter(t *testing.T) {
	min := decimal.NewFromInt(10)

	assert.False(t, FilterOptions{}.HasAmountFilter())
	assert.True(t, FilterOptions{MinAmount: &min}.HasAmountFilter())
	assert.True(t, FilterOptions{MaxAmount: &min}.HasAmountFilter())
}
