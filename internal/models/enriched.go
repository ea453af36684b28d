package models

// ProductInfo is the catalog metadata attached to a transaction during
// enrichment, keyed by the numeric id extracted from the product identifier.
type ProductInfo struct {
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Brand    string  `json:"brand" yaml:"brand"`
	Rating   float64 `json:"rating" yaml:"rating"`
}

// CatalogProduct is a single product entry as returned by the catalog API.
type CatalogProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// EnrichedTransaction extends a Transaction with catalog metadata.
// The csv tags define the pipe-delimited output column set; rating is a
// pointer so unmatched records serialize as an empty field.
type EnrichedTransaction struct {
	Transaction
	APICategory string   `csv:"API_Category"`
	APIBrand    string   `csv:"API_Brand"`
	APIRating   *float64 `csv:"API_Rating"`
	APIMatch    bool     `csv:"API_Match"`
}
