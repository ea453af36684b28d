// Package common provides the pipeline steps shared by multiple commands.
package common

import (
	"context"
	"time"

	"fjacquet/sales-analytics/internal/config"
	"fjacquet/sales-analytics/internal/enrichment"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/reader"
	"fjacquet/sales-analytics/internal/salesparser"
	"fjacquet/sales-analytics/internal/store"
	"fjacquet/sales-analytics/internal/validator"
)

// LoadValidTransactions runs read → parse → validate/filter for the given
// input file and returns the final valid set together with the parse stats
// and the full validation result.
func LoadValidTransactions(inputFile string, cfg *config.Config, opts models.FilterOptions, logger logging.Logger) ([]models.Transaction, salesparser.ParseStats, validator.Result, error) {
	lines, err := reader.ReadSalesFile(inputFile, logger)
	if err != nil {
		return nil, salesparser.ParseStats{}, validator.Result{}, err
	}

	transactions, stats := salesparser.ParseLines(lines, cfg.Input.Delimiter, logger)
	result := validator.ValidateAndFilter(transactions, opts, logger)

	return result.Valid, stats, result, nil
}

// LoadCatalog obtains the product mapping, preferring the remote catalog
// and degrading to the local cache. In offline mode only the cache is used.
// A missing catalog yields an empty mapping; enrichment still runs, every
// record simply stays unmatched.
func LoadCatalog(ctx context.Context, cfg *config.Config, offline bool, logger logging.Logger) map[int]models.ProductInfo {
	catalogStore := store.NewCatalogStore(cfg.Catalog.CacheFile, logger)

	if offline {
		mapping, err := catalogStore.Load()
		if err != nil {
			logger.WithError(err).Warn("Failed to load catalog cache")
			return map[int]models.ProductInfo{}
		}
		return mapping
	}

	client := enrichment.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		cfg.API.PageLimit,
		logger,
	)

	products, err := client.FetchAllProducts(ctx)
	if err != nil {
		logger.WithError(err).Warn("Catalog fetch failed, falling back to cache")
		mapping, loadErr := catalogStore.Load()
		if loadErr != nil {
			logger.WithError(loadErr).Warn("Failed to load catalog cache")
			return map[int]models.ProductInfo{}
		}
		return mapping
	}

	mapping := enrichment.BuildProductMapping(products)
	if err := catalogStore.Save(mapping); err != nil {
		logger.WithError(err).Warn("Failed to save catalog cache")
	}
	return mapping
}
