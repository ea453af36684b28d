// Package enrichment augments validated transactions with product metadata
// fetched from the remote catalog API.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parsererror"
)

// Client fetches product data from the catalog API.
type Client struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a catalog API client. The timeout bounds every request;
// pageLimit caps how many products a single fetch asks for.
func NewClient(baseURL string, timeout time.Duration, pageLimit int, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Client{
		baseURL:    baseURL,
		pageLimit:  pageLimit,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// productsResponse mirrors the catalog API payload.
type productsResponse struct {
	Products []models.CatalogProduct `json:"products"`
}

// FetchAllProducts retrieves the product catalog. A failure is returned to
// the caller rather than aborting anything: the pipeline degrades to
// unenriched output when the catalog is unreachable.
func (c *Client) FetchAllProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.pageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &parsererror.CatalogError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("Catalog request failed",
			logging.Field{Key: logging.FieldURL, Value: url})
		return nil, &parsererror.CatalogError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Catalog returned unexpected status",
			logging.Field{Key: logging.FieldURL, Value: url},
			logging.Field{Key: "status", Value: resp.StatusCode})
		return nil, &parsererror.CatalogError{URL: url, Status: resp.StatusCode}
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &parsererror.CatalogError{URL: url, Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.logger.Info("Fetched product catalog",
		logging.Field{Key: logging.FieldCount, Value: len(payload.Products)})

	return payload.Products, nil
}
