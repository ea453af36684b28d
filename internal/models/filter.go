package models

import "github.com/shopspring/decimal"

// FilterOptions carries the caller-supplied soft filters for the validator.
// Nil fields mean the filter is absent; an explicit zero value is honored,
// so amounts travel as pointers rather than sentinel values.
type FilterOptions struct {
	Region    *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// HasAmountFilter reports whether either bound of the amount range is set.
func (o FilterOptions) HasAmountFilter() bool {
	return o.MinAmount != nil || o.MaxAmount != nil
}
