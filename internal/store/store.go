// Package store persists the fetched product catalog to a local YAML cache
// so enrichment and reporting can run without network access.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"gopkg.in/yaml.v3"
)

// CatalogStore manages loading and saving of the product catalog cache.
type CatalogStore struct {
	CacheFile string
	logger    logging.Logger
}

// NewCatalogStore creates a store backed by the given cache file path.
func NewCatalogStore(cacheFile string, logger logging.Logger) *CatalogStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cacheFile == "" {
		cacheFile = "data/product_catalog.yaml"
	}
	return &CatalogStore{
		CacheFile: cacheFile,
		logger:    logger,
	}
}

// resolveCacheFile finds the cache file in standard locations. Relative
// paths are tried as-is, then under ./data, then under the user's
// ~/.config/sales-analytics directory.
func (s *CatalogStore) resolveCacheFile() (string, error) {
	if filepath.IsAbs(s.CacheFile) {
		if _, err := os.Stat(s.CacheFile); err == nil {
			return s.CacheFile, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		s.CacheFile,
		filepath.Join("data", filepath.Base(s.CacheFile)),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, ".config", "sales-analytics", filepath.Base(s.CacheFile)))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the catalog cache. A missing cache is not an error; it yields
// an empty mapping so callers can decide to fetch instead.
func (s *CatalogStore) Load() (map[int]models.ProductInfo, error) {
	filePath, err := s.resolveCacheFile()
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Catalog cache not found",
				logging.Field{Key: logging.FieldFile, Value: s.CacheFile})
			return map[int]models.ProductInfo{}, nil
		}
		return nil, fmt.Errorf("error resolving catalog cache: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path resolved from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading catalog cache: %w", err)
	}

	var mapping map[int]models.ProductInfo
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("error parsing catalog cache: %w", err)
	}
	if mapping == nil {
		mapping = map[int]models.ProductInfo{}
	}

	s.logger.Debug("Loaded catalog cache",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(mapping)})

	return mapping, nil
}

// Save writes the catalog mapping to the cache file, creating parent
// directories as needed.
func (s *CatalogStore) Save(mapping map[int]models.ProductInfo) error {
	filePath := s.CacheFile

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("error marshaling catalog cache: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing catalog cache: %w", err)
	}

	s.logger.Debug("Saved catalog cache",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(mapping)})

	return nil
}
