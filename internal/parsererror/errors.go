// Package parsererror defines the typed errors surfaced by the pipeline's
// file and field parsing stages.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of a record.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileError represents a failure to read or decode the sales data file.
type FileError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %s: %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot read %s: %s", e.FilePath, e.Reason)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// CatalogError represents a failure talking to the product catalog API.
type CatalogError struct {
	URL    string
	Status int
	Err    error
}

func (e *CatalogError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog request %s failed with status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("catalog request %s failed: %v", e.URL, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
