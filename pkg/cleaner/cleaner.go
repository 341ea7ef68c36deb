// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

// DefaultSentinel replaces missing categorical values
const DefaultSentinel = "Unknown"

// Policy is the missing-value policy shared by every program
type Policy struct {
	Sentinel    string   // Placeholder for missing text values, duration included
	DateLayouts []string // Layouts tried in order for date_added
}

// DefaultPolicy returns the unified fill policy
func DefaultPolicy() Policy {
	return Policy{
		Sentinel:    DefaultSentinel,
		DateLayouts: defaultDateLayouts,
	}
}

// RowError reports a value that prevents a row from being loaded at all
type RowError struct {
	Row    int // 0-based data row index
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %s, value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// DataCleaner handles missing values and derived fields during load
type DataCleaner struct {
	policy   Policy
	metadata *model.TableMetadata
	logger   *zap.Logger
	now      func() time.Time
}

// NewDataCleaner creates a new DataCleaner instance
func NewDataCleaner(policy Policy, logger *zap.Logger) (*DataCleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if policy.Sentinel == "" {
		return nil, errors.New("sentinel cannot be empty")
	}
	if len(policy.DateLayouts) == 0 {
		policy.DateLayouts = defaultDateLayouts
	}

	return &DataCleaner{
		policy:   policy,
		metadata: model.CatalogMetadata(),
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Metadata returns the table layout the cleaner expects
func (c *DataCleaner) Metadata() *model.TableMetadata {
	return c.metadata
}

// Sentinel returns the placeholder used for missing values
func (c *DataCleaner) Sentinel() string {
	return c.policy.Sentinel
}

// CleanFrame cleans every row of a raw frame and returns the typed titles
// with the operations performed. Row order is preserved.
func (c *DataCleaner) CleanFrame(df dataframe.DataFrame) ([]model.Title, []model.CleaningOperation, error) {
	if df.Err != nil {
		return nil, nil, fmt.Errorf("cannot clean invalid frame: %w", df.Err)
	}

	cells := newFrameCells(df, c.metadata)
	titles := make([]model.Title, 0, df.Nrow())
	var allOperations []model.CleaningOperation

	for i := 0; i < df.Nrow(); i++ {
		title, operations, err := c.cleanSingleRow(cells, i)
		if err != nil {
			return nil, nil, err
		}

		titles = append(titles, title)
		allOperations = append(allOperations, operations...)
	}

	if len(allOperations) > 0 {
		c.RecordCleaningOperations(allOperations)
	}

	return titles, allOperations, nil
}

// cleanSingleRow fills, parses and derives the fields of one row
func (c *DataCleaner) cleanSingleRow(cells frameCells, row int) (model.Title, []model.CleaningOperation, error) {
	var operations []model.CleaningOperation
	record := func(op *model.CleaningOperation) {
		if op != nil {
			op.CleanedAt = c.now()
			operations = append(operations, *op)
		}
	}

	showID, _ := cells.get(model.ColumnShowID, row)
	rowID := showID
	if rowID == "" {
		rowID = fmt.Sprintf("line %d", row+2)
	}

	// release_year must hold for every row
	rawYear, present := cells.get(model.ColumnReleaseYear, row)
	if !present {
		return model.Title{}, nil, &RowError{Row: row, Column: model.ColumnReleaseYear, Err: errors.New("missing release year")}
	}
	year, err := toInt(rawYear)
	if err != nil {
		return model.Title{}, nil, &RowError{Row: row, Column: model.ColumnReleaseYear, Value: rawYear, Err: err}
	}

	rawType, _ := cells.get(model.ColumnType, row)
	name, _ := cells.get(model.ColumnTitle, row)
	cast, _ := cells.get(model.ColumnCast, row)
	description, _ := cells.get(model.ColumnDescription, row)

	title := model.Title{
		ShowID:      showID,
		Type:        model.ContentType(rawType),
		Name:        name,
		Cast:        cast,
		ReleaseYear: year,
		Description: description,
	}

	// Categorical columns get the sentinel
	filled := make(map[string]string, 5)
	for _, colName := range c.metadata.FilledColumns() {
		value, present := cells.get(colName, row)
		cleanedValue, op := fillSentinel(value, present, model.CleaningContext{
			ColumnName:    colName,
			RowIdentifier: rowID,
			Sentinel:      c.policy.Sentinel,
		})
		filled[colName] = cleanedValue
		record(op)
	}
	title.Director = filled[model.ColumnDirector]
	title.Country = filled[model.ColumnCountry]
	title.Rating = filled[model.ColumnRating]
	title.Duration = filled[model.ColumnDuration]
	title.ListedIn = filled[model.ColumnListedIn]

	// Best-effort date parsing
	rawDate, present := cells.get(model.ColumnDateAdded, row)
	dateAdded, dateOps := parseDateAdded(rawDate, present, rowID, c.policy.DateLayouts)
	for _, op := range dateOps {
		record(op)
	}
	if dateAdded != nil {
		yearAdded := dateAdded.Year()
		monthAdded := int(dateAdded.Month())
		title.DateAdded = dateAdded
		title.YearAdded = &yearAdded
		title.MonthAdded = &monthAdded
	}

	// Numeric duration comes from the raw value, not the filled one
	rawDuration, present := cells.get(model.ColumnDuration, row)
	minutes, op := extractDurationMinutes(rawDuration, present, rowID)
	record(op)
	title.DurationMinutes = minutes

	return title, operations, nil
}

// RecordCleaningOperations logs a per-column summary of the operations and
// returns the counts keyed by "operation/column"
func (c *DataCleaner) RecordCleaningOperations(operations []model.CleaningOperation) map[string]int {
	counts := make(map[string]int)
	for _, op := range operations {
		counts[op.CleaningOperation+"/"+op.ColumnName]++
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.SplitN(key, "/", 2)
		c.logger.Debug("Cleaning operations",
			zap.String("operation", parts[0]),
			zap.String("column", parts[1]),
			zap.Int("count", counts[key]))
	}

	c.logger.Info("Recorded cleaning operations", zap.Int("count", len(operations)))
	return counts
}

// frameCells gives row-wise access to a string frame
type frameCells struct {
	values  map[string][]string
	missing map[string][]bool
}

func newFrameCells(df dataframe.DataFrame, metadata *model.TableMetadata) frameCells {
	cells := frameCells{
		values:  make(map[string][]string, df.Ncol()),
		missing: make(map[string][]bool, df.Ncol()),
	}
	for _, name := range df.Names() {
		col := df.Col(name)
		// Header names resolve to the canonical column name
		key := name
		if column := metadata.GetColumnByName(name); column != nil {
			key = column.Name
		}
		values := make([]string, col.Len())
		missing := make([]bool, col.Len())
		for i := 0; i < col.Len(); i++ {
			elem := col.Elem(i)
			if elem.IsNA() {
				missing[i] = true
				continue
			}
			values[i] = elem.String()
		}
		cells.values[key] = values
		cells.missing[key] = missing
	}
	return cells
}

// get returns the cell value and whether it is present (column exists and is not NaN)
func (fc frameCells) get(column string, row int) (string, bool) {
	values, ok := fc.values[column]
	if !ok || row >= len(values) {
		return "", false
	}
	if fc.missing[column][row] {
		return "", false
	}
	return values[row], true
}
