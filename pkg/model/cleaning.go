// pkg/model/cleaning.go
package model

import (
	"time"
)

// Cleaning operation kinds recorded by the cleaner
const (
	OperationFillSentinel    = "fill_sentinel"
	OperationDateCoerce      = "date_coerce"
	OperationDurationExtract = "duration_extract"
	OperationTrimWhitespace  = "trim_whitespace"
)

// CleaningOperation represents a single data cleaning operation
type CleaningOperation struct {
	ColumnName        string      // Column that was cleaned
	OriginalValue     interface{} // Original value (may be nil)
	NewValue          string      // New value after cleaning
	RowIdentifier     string      // show_id of the row, or its line number when show_id is empty
	CleaningOperation string      // Type of cleaning performed (e.g., "fill_sentinel")
	CleaningReason    string      // Reason for cleaning (e.g., "missing_value")
	CleanedAt         time.Time   // When the cleaning occurred
}

// CleaningContext contains information needed for cleaning a value
type CleaningContext struct {
	ColumnName    string
	RowIdentifier string
	Sentinel      string
}
