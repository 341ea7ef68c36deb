// pkg/aggregate/describe.go
package aggregate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
)

// NumericSummary holds the descriptive statistics of a numeric column.
// Statistics of an empty column are NaN.
type NumericSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Q50    float64
	Q75    float64
	Max    float64
}

// CategoricalSummary holds count, distinct values and the most frequent value
type CategoricalSummary struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// ColumnInfo is one line of the frame info listing
type ColumnInfo struct {
	Column   string
	NonNull  int
	DataType string
}

// Description is the descriptive overview of a catalog
type Description struct {
	Rows        int
	Numeric     []NumericSummary
	Categorical []CategoricalSummary
	Missing     []Count // column -> missing values after cleaning, in column order
	Info        []ColumnInfo
}

type numericColumn struct {
	name  string
	value func(model.Title) (float64, bool)
}

type textColumn struct {
	name  string
	value func(model.Title) string
}

var numericColumns = []numericColumn{
	{model.ColumnReleaseYear, func(t model.Title) (float64, bool) { return float64(t.ReleaseYear), true }},
	{model.ColumnYearAdded, intPtr(func(t model.Title) *int { return t.YearAdded })},
	{model.ColumnMonthAdded, intPtr(func(t model.Title) *int { return t.MonthAdded })},
	{model.ColumnDurationMinutes, intPtr(func(t model.Title) *int { return t.DurationMinutes })},
}

var textColumns = []textColumn{
	{model.ColumnShowID, func(t model.Title) string { return t.ShowID }},
	{model.ColumnType, func(t model.Title) string { return string(t.Type) }},
	{model.ColumnTitle, func(t model.Title) string { return t.Name }},
	{model.ColumnDirector, func(t model.Title) string { return t.Director }},
	{model.ColumnCast, func(t model.Title) string { return t.Cast }},
	{model.ColumnCountry, func(t model.Title) string { return t.Country }},
	{model.ColumnDateAdded, func(t model.Title) string {
		if t.DateAdded == nil {
			return ""
		}
		return t.DateAdded.Format("2006-01-02")
	}},
	{model.ColumnRating, func(t model.Title) string { return t.Rating }},
	{model.ColumnDuration, func(t model.Title) string { return t.Duration }},
	{model.ColumnListedIn, func(t model.Title) string { return t.ListedIn }},
	{model.ColumnDescription, func(t model.Title) string { return t.Description }},
}

func intPtr(get func(model.Title) *int) func(model.Title) (float64, bool) {
	return func(t model.Title) (float64, bool) {
		if v := get(t); v != nil {
			return float64(*v), true
		}
		return 0, false
	}
}

// Describe computes descriptive statistics, missing-value counts and column
// info for every column of c
func Describe(c *catalog.Catalog) Description {
	rows := c.Rows()
	desc := Description{Rows: len(rows)}

	for _, col := range textColumns {
		counter := newCounter()
		count := 0
		for _, t := range rows {
			if v := col.value(t); v != "" {
				counter.add(v)
				count++
			}
		}
		summary := CategoricalSummary{Column: col.name, Count: count, Unique: len(counter.order)}
		if ranked := counter.ranked(); len(ranked) > 0 {
			summary.Top = ranked[0].Value
			summary.Freq = ranked[0].Count
		}
		desc.Categorical = append(desc.Categorical, summary)
		desc.Missing = append(desc.Missing, Count{Value: col.name, Count: len(rows) - count})
		desc.Info = append(desc.Info, ColumnInfo{Column: col.name, NonNull: count, DataType: "string"})
	}

	for _, col := range numericColumns {
		values := make([]float64, 0, len(rows))
		for _, t := range rows {
			if v, ok := col.value(t); ok {
				values = append(values, v)
			}
		}
		desc.Numeric = append(desc.Numeric, Summarize(col.name, values))
		desc.Missing = append(desc.Missing, Count{Value: col.name, Count: len(rows) - len(values)})
		dataType := "float64"
		if col.name == model.ColumnReleaseYear {
			dataType = "int"
		}
		desc.Info = append(desc.Info, ColumnInfo{Column: col.name, NonNull: len(values), DataType: dataType})
	}

	return desc
}

// Summarize computes count, mean, sample standard deviation, min, quartiles
// and max of values
func Summarize(column string, values []float64) NumericSummary {
	summary := NumericSummary{Column: column, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		summary.Mean, summary.Std, summary.Min, summary.Max = nan, nan, nan, nan
		summary.Q25, summary.Q50, summary.Q75 = nan, nan, nan
		return summary
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	summary.Mean = stat.Mean(sorted, nil)
	summary.Std = math.NaN()
	if len(sorted) > 1 {
		summary.Std = stat.StdDev(sorted, nil)
	}
	summary.Min = floats.Min(sorted)
	summary.Max = floats.Max(sorted)
	summary.Q25 = quantile(sorted, 0.25)
	summary.Q50 = quantile(sorted, 0.50)
	summary.Q75 = quantile(sorted, 0.75)
	return summary
}

// quantile linearly interpolates between the closest ranks of sorted values
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
