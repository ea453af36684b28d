package models

// RejectionReason identifies why a record was excluded from the pipeline.
// Rejections are informational; they never abort a run.
type RejectionReason string

const (
	ReasonFieldCount              RejectionReason = "Invalid field count"
	ReasonNumericFormat           RejectionReason = "Invalid numeric format"
	ReasonTransactionIDPrefix     RejectionReason = "TransactionID missing required prefix"
	ReasonProductIDPrefix         RejectionReason = "ProductID missing required prefix"
	ReasonCustomerIDPrefix        RejectionReason = "CustomerID missing required prefix"
	ReasonMissingCustomerOrRegion RejectionReason = "Missing CustomerID or Region"
	ReasonNonPositiveQuantity     RejectionReason = "Quantity not positive"
	ReasonNonPositivePrice        RejectionReason = "UnitPrice not positive"
)

// RejectionRecord pairs a rejected source line with its reason.
type RejectionRecord struct {
	Line   string
	Reason RejectionReason
}

// ValidationSummary reports the counters produced by a validate-and-filter
// pass. All counts are recomputed on every run.
type ValidationSummary struct {
	TotalInput       int `yaml:"total_input"`
	Invalid          int `yaml:"invalid"`
	FilteredByRegion int `yaml:"filtered_by_region"`
	FilteredByAmount int `yaml:"filtered_by_amount"`
	FinalCount       int `yaml:"final_count"`
}
