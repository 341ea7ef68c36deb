// pkg/model/metadata.go
package model

import "strings"

// Catalog CSV column names
const (
	ColumnShowID      = "show_id"
	ColumnType        = "type"
	ColumnTitle       = "title"
	ColumnDirector    = "director"
	ColumnCast        = "cast"
	ColumnCountry     = "country"
	ColumnDateAdded   = "date_added"
	ColumnReleaseYear = "release_year"
	ColumnRating      = "rating"
	ColumnDuration    = "duration"
	ColumnListedIn    = "listed_in"
	ColumnDescription = "description"

	// Derived columns
	ColumnYearAdded       = "year_added"
	ColumnMonthAdded      = "month_added"
	ColumnDurationMinutes = "duration_minutes"
)

// TableMetadata contains the structure information for the catalog file
type TableMetadata struct {
	Table   string   // Logical table name (file base name)
	Columns []Column // Column definitions
}

// Column represents metadata about a catalog column
type Column struct {
	Name        string // Column name as it appears in the header
	DataType    string // Logical data type (TEXT, INTEGER, DATE)
	Nullable    bool   // Whether the raw file may leave the column empty
	Required    bool   // Whether the column must be present in the header
	MultiValued bool   // Whether cells hold ", " separated values
	Filled      bool   // Whether missing values are replaced by the sentinel
}

// CatalogMetadata returns the expected layout of the titles file
func CatalogMetadata() *TableMetadata {
	return &TableMetadata{
		Table: "netflix_titles",
		Columns: []Column{
			{Name: ColumnShowID, DataType: "TEXT", Required: true},
			{Name: ColumnType, DataType: "TEXT", Required: true},
			{Name: ColumnTitle, DataType: "TEXT", Required: true, Nullable: true},
			{Name: ColumnDirector, DataType: "TEXT", Required: true, Nullable: true, MultiValued: true, Filled: true},
			{Name: ColumnCast, DataType: "TEXT", Nullable: true, MultiValued: true},
			{Name: ColumnCountry, DataType: "TEXT", Required: true, Nullable: true, MultiValued: true, Filled: true},
			{Name: ColumnDateAdded, DataType: "DATE", Required: true, Nullable: true},
			{Name: ColumnReleaseYear, DataType: "INTEGER", Required: true},
			{Name: ColumnRating, DataType: "TEXT", Required: true, Nullable: true, Filled: true},
			{Name: ColumnDuration, DataType: "TEXT", Required: true, Nullable: true, Filled: true},
			{Name: ColumnListedIn, DataType: "TEXT", Required: true, Nullable: true, MultiValued: true, Filled: true},
			{Name: ColumnDescription, DataType: "TEXT", Nullable: true},
		},
	}
}

// GetColumnByName returns a column by name (case-insensitive)
// Returns nil if column not found
func (tm *TableMetadata) GetColumnByName(name string) *Column {
	normalizedName := normalizeColumnName(name)
	for i, col := range tm.Columns {
		if normalizeColumnName(col.Name) == normalizedName {
			return &tm.Columns[i]
		}
	}
	return nil
}

// RequiredColumns lists the header names that must be present
func (tm *TableMetadata) RequiredColumns() []string {
	var names []string
	for _, col := range tm.Columns {
		if col.Required {
			names = append(names, col.Name)
		}
	}
	return names
}

// FilledColumns lists the columns whose missing values get the sentinel
func (tm *TableMetadata) FilledColumns() []string {
	var names []string
	for _, col := range tm.Columns {
		if col.Filled {
			names = append(names, col.Name)
		}
	}
	return names
}

// MissingColumns returns the required columns absent from header
func (tm *TableMetadata) MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[normalizeColumnName(h)] = true
	}

	var missing []string
	for _, name := range tm.RequiredColumns() {
		if !present[normalizeColumnName(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}

func normalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
