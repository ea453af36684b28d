// Package salesparser converts raw delimited sales lines into typed
// transaction records. Parsing is purely structural: field count and
// numeric formats are checked here, while business rules (identifier
// prefixes, positive amounts) belong to the validator.
package salesparser

import (
	"strconv"
	"strings"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultDelimiter separates fields in a raw sales line.
const DefaultDelimiter = "|"

// ParseStats reports what a parsing pass saw and dropped.
type ParseStats struct {
	TotalLines int
	Dropped    int
	Rejections []models.RejectionRecord
}

// ParseLines parses raw text lines into Transactions, silently excluding
// lines that fail structural checks. Header rows are recognized and skipped
// without being counted at all. A rejection never aborts the pass.
func ParseLines(lines []string, delimiter string, logger logging.Logger) ([]models.Transaction, ParseStats) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var transactions []models.Transaction
	stats := ParseStats{}

	for _, line := range lines {
		fields := strings.Split(line, delimiter)

		if fields[0] == "TransactionID" {
			continue
		}

		stats.TotalLines++

		tx, reason, ok := parseLine(fields)
		if !ok {
			stats.Dropped++
			stats.Rejections = append(stats.Rejections, models.RejectionRecord{
				Line:   line,
				Reason: reason,
			})
			logger.Warn("Skipping malformed sales line",
				logging.Field{Key: logging.FieldLine, Value: line},
				logging.Field{Key: logging.FieldReason, Value: string(reason)})
			continue
		}

		transactions = append(transactions, tx)
	}

	logger.Info("Parsed sales lines",
		logging.Field{Key: "total", Value: stats.TotalLines},
		logging.Field{Key: "dropped", Value: stats.Dropped},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, stats
}

// parseLine builds a Transaction from split fields. It returns the
// rejection reason when the line is structurally unusable.
func parseLine(fields []string) (models.Transaction, models.RejectionReason, bool) {
	if len(fields) != models.FieldCount {
		return models.Transaction{}, models.ReasonFieldCount, false
	}

	quantity, err := parseQuantity(fields[4])
	if err != nil {
		return models.Transaction{}, models.ReasonNumericFormat, false
	}

	unitPrice, err := parseUnitPrice(fields[5])
	if err != nil {
		return models.Transaction{}, models.ReasonNumericFormat, false
	}

	return models.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   cleanProductName(fields[3]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, "", true
}

// parseQuantity parses the quantity field as an integer.
func parseQuantity(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

// parseUnitPrice parses the unit price, tolerating thousands-separator
// commas such as "1,299.50".
func parseUnitPrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return decimal.NewFromString(cleaned)
}

// cleanProductName strips embedded commas and surrounding whitespace so the
// name is safe for delimited output and consistent as a grouping key.
func cleanProductName(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
}
