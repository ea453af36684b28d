package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Essence Mascara", "category": "beauty", "brand": "Essence", "price": 9.99, "rating": 4.94},
				{"id": 2, "title": "Eyeshadow Palette", "category": "beauty", "brand": "Glamour", "price": 19.99, "rating": 3.28}
			],
			"total": 2
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3, &logging.MockLogger{})

	products, err := client.FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Essence Mascara", products[0].Title)
	assert.Equal(t, "Glamour", products[1].Brand)
}

func TestFetchAllProductsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 100, &logging.MockLogger{})

	_, err := client.FetchAllProducts(context.Background())
	require.Error(t, err)

	var catalogErr *parsererror.CatalogError
	require.ErrorAs(t, err, &catalogErr)
	assert.Equal(t, http.StatusInternalServerError, catalogErr.Status)
}

func TestFetchAllProductsUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, 100, &logging.MockLogger{})

	_, err := client.FetchAllProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchAllProductsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": "not-a-list"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 100, &logging.MockLogger{})

	_, err := client.FetchAllProducts(context.Background())
	assert.Error(t, err)
}
