// Package models defines the data types shared across the sales pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// Identifier prefixes expected on well-formed records.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// FieldCount is the number of pipe-delimited fields in a source line.
const FieldCount = 8

// Transaction represents a single parsed sales record.
// It is immutable once constructed; every pipeline stage produces
// new values rather than mutating existing ones.
type Transaction struct {
	TransactionID string          `csv:"TransactionID"`
	Date          string          `csv:"Date"`
	ProductID     string          `csv:"ProductID"`
	ProductName   string          `csv:"ProductName"`
	Quantity      int             `csv:"Quantity"`
	UnitPrice     decimal.Decimal `csv:"UnitPrice"`
	CustomerID    string          `csv:"CustomerID"`
	Region        string          `csv:"Region"`
}

// LineRevenue returns quantity × unit price for this record.
// Every aggregation recomputes revenue through this method so totals,
// groupings and percentages agree on the same decimal semantics.
func (t Transaction) LineRevenue() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
