// Package validator applies the two-phase validation and filtering policy:
// unconditional hard validation first, then the caller's optional soft
// filters on whatever survived.
package validator

import (
	"sort"
	"strings"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// FilterInfo describes the phase-1 survivors before soft filters run. It is
// informational output for the caller (e.g. to present filter choices) and
// has no effect on filtering itself.
type FilterInfo struct {
	Regions    []string
	MinAmount  decimal.Decimal
	MaxAmount  decimal.Decimal
	HasAmounts bool
}

// Result is the outcome of a validate-and-filter pass.
type Result struct {
	Valid        []models.Transaction
	InvalidCount int
	Rejections   []models.RejectionRecord
	Summary      models.ValidationSummary
	Info         FilterInfo
}

// ValidateAndFilter runs hard validation over every transaction, then
// applies the optional soft filters to the survivors. The region filter is
// checked strictly before the amount filter, so a record excluded by region
// is never counted against the amount range.
func ValidateAndFilter(transactions []models.Transaction, opts models.FilterOptions, logger logging.Logger) Result {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	result := Result{}

	// Phase 1: hard validation, always enforced.
	var prelim []models.Transaction
	for _, t := range transactions {
		if reason, bad := hardValidationReason(t); bad {
			result.InvalidCount++
			result.Rejections = append(result.Rejections, models.RejectionRecord{
				Line:   t.TransactionID,
				Reason: reason,
			})
			continue
		}
		prelim = append(prelim, t)
	}

	result.Info = buildFilterInfo(prelim)
	logger.Info("Available regions",
		logging.Field{Key: "regions", Value: result.Info.Regions})
	if result.Info.HasAmounts {
		logger.Info("Transaction amount range",
			logging.Field{Key: "min", Value: result.Info.MinAmount.String()},
			logging.Field{Key: "max", Value: result.Info.MaxAmount.String()})
	}

	// Phase 2: soft filters, region before amount, first match wins.
	filteredByRegion := 0
	filteredByAmount := 0
	for _, t := range prelim {
		if opts.Region != nil && t.Region != *opts.Region {
			filteredByRegion++
			continue
		}
		if excludedByAmount(t, opts) {
			filteredByAmount++
			continue
		}
		result.Valid = append(result.Valid, t)
	}

	result.Summary = models.ValidationSummary{
		TotalInput:       len(transactions),
		Invalid:          result.InvalidCount,
		FilteredByRegion: filteredByRegion,
		FilteredByAmount: filteredByAmount,
		FinalCount:       len(result.Valid),
	}

	logger.Info("Validation and filter summary",
		logging.Field{Key: "total_input", Value: result.Summary.TotalInput},
		logging.Field{Key: "invalid", Value: result.Summary.Invalid},
		logging.Field{Key: "filtered_by_region", Value: result.Summary.FilteredByRegion},
		logging.Field{Key: "filtered_by_amount", Value: result.Summary.FilteredByAmount},
		logging.Field{Key: "final_count", Value: result.Summary.FinalCount})

	return result
}

// hardValidationReason returns the first violated hard rule, if any.
func hardValidationReason(t models.Transaction) (models.RejectionReason, bool) {
	switch {
	case t.Quantity <= 0:
		return models.ReasonNonPositiveQuantity, true
	case !t.UnitPrice.IsPositive():
		return models.ReasonNonPositivePrice, true
	case !strings.HasPrefix(t.TransactionID, models.TransactionIDPrefix):
		return models.ReasonTransactionIDPrefix, true
	case !strings.HasPrefix(t.ProductID, models.ProductIDPrefix):
		return models.ReasonProductIDPrefix, true
	case !strings.HasPrefix(t.CustomerID, models.CustomerIDPrefix):
		return models.ReasonCustomerIDPrefix, true
	case strings.TrimSpace(t.Region) == "":
		return models.ReasonMissingCustomerOrRegion, true
	}
	return "", false
}

// excludedByAmount reports whether the line revenue falls outside the
// inclusive [MinAmount, MaxAmount] range. Nil bounds are open.
func excludedByAmount(t models.Transaction, opts models.FilterOptions) bool {
	if !opts.HasAmountFilter() {
		return false
	}
	revenue := t.LineRevenue()
	if opts.MinAmount != nil && revenue.LessThan(*opts.MinAmount) {
		return true
	}
	if opts.MaxAmount != nil && revenue.GreaterThan(*opts.MaxAmount) {
		return true
	}
	return false
}

// buildFilterInfo computes the distinct sorted regions and the line-revenue
// range of the given transactions. Empty input yields a zero-valued info.
func buildFilterInfo(transactions []models.Transaction) FilterInfo {
	info := FilterInfo{}
	if len(transactions) == 0 {
		return info
	}

	regionSet := make(map[string]struct{})
	for i, t := range transactions {
		regionSet[t.Region] = struct{}{}

		revenue := t.LineRevenue()
		if i == 0 {
			info.MinAmount = revenue
			info.MaxAmount = revenue
			info.HasAmounts = true
			continue
		}
		if revenue.LessThan(info.MinAmount) {
			info.MinAmount = revenue
		}
		if revenue.GreaterThan(info.MaxAmount) {
			info.MaxAmount = revenue
		}
	}

	info.Regions = make([]string, 0, len(regionSet))
	for region := range regionSet {
		info.Regions = append(info.Regions, region)
	}
	sort.Strings(info.Regions)

	return info
}
