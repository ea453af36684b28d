package enrichment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/gocarina/gocsv"
)

// OutputDelimiter separates fields in the enriched output file, matching
// the source data format.
const OutputDelimiter = '|'

// SaveEnriched writes enriched transactions to a pipe-delimited file with a
// header row, creating parent directories as needed.
func SaveEnriched(enriched []models.EnrichedTransaction, outputFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if enriched == nil {
		return fmt.Errorf("cannot write nil enriched transactions")
	}

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(outputFile) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = OutputDelimiter

	if err := gocsv.MarshalCSV(enriched, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing enriched data: %w", err)
	}

	logger.Info("Saved enriched sales data",
		logging.Field{Key: logging.FieldOutput, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(enriched)})

	return nil
}
