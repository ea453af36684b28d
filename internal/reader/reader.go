// Package reader loads raw sales data files and hands the pipeline clean,
// non-empty text lines. Source files are not guaranteed to be UTF-8, so
// decoding falls back through the legacy single-byte encodings the data has
// historically shipped in.
package reader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/parsererror"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// headerPrefix marks the column-name row of a sales data file.
const headerPrefix = "TransactionID"

// ReadSalesFile reads a sales data file and returns its non-empty,
// non-header lines in order, trimmed of surrounding whitespace.
// Decoding tries UTF-8 first, then Windows-1252, then Latin-1.
func ReadSalesFile(filePath string, logger logging.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, &parsererror.FileError{
			FilePath: filePath,
			Reason:   "failed to read file",
			Err:      err,
		}
	}

	text, encodingName, err := decodeBytes(data)
	if err != nil {
		return nil, &parsererror.FileError{
			FilePath: filePath,
			Reason:   "unable to decode file contents",
			Err:      err,
		}
	}

	lines := splitLines(text)

	logger.Info("Read sales data file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldEncoding, Value: encodingName},
		logging.Field{Key: logging.FieldCount, Value: len(lines)})

	return lines, nil
}

// decodeBytes decodes raw file bytes, falling back through the supported
// encodings until one succeeds.
func decodeBytes(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	fallbacks := []struct {
		name    string
		decoder *encoding.Decoder
	}{
		{"windows-1252", charmap.Windows1252.NewDecoder()},
		{"latin-1", charmap.ISO8859_1.NewDecoder()},
	}

	var lastErr error
	for _, fb := range fallbacks {
		decoded, err := fb.decoder.Bytes(data)
		if err != nil {
			lastErr = err
			continue
		}
		return string(decoded), fb.name, nil
	}

	return "", "", fmt.Errorf("no supported encoding could decode the file: %w", lastErr)
}

// splitLines splits decoded text into trimmed lines, dropping blank lines
// and header rows. The parser never sees either.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, headerPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
