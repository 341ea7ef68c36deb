// pkg/report/stats.go
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-gota/gota/dataframe"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
	"github.com/David-Botos/catalog-eda/pkg/catalog"
)

// HeadRows is the size of the initial view
const HeadRows = 5

// maxCellWidth truncates long text cells in terminal tables
const maxCellWidth = 28

// PrintOverview writes the initial view, descriptive statistics, missing
// values and column info of c
func PrintOverview(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, bannerStyle.Render("Streaming catalog exploratory analysis"))

	heading(w, "Initial view")
	fmt.Fprintln(w, frameTable(aggregate.Head(c, HeadRows)))

	desc := aggregate.Describe(c)

	heading(w, "Descriptive statistics")
	fmt.Fprintln(w, numericTable(desc.Numeric))
	fmt.Fprintln(w, categoricalTable(desc.Categorical))

	heading(w, "Missing values")
	missing := table.New().Border(lipgloss.NormalBorder()).BorderStyle(borderStyle).Headers("column", "missing")
	for _, m := range desc.Missing {
		missing.Row(m.Value, strconv.Itoa(m.Count))
	}
	fmt.Fprintln(w, missing.Render())

	heading(w, "Frame info")
	mutedColor.Fprintf(w, "%d entries, %d columns\n", desc.Rows, len(desc.Info))
	info := table.New().Border(lipgloss.NormalBorder()).BorderStyle(borderStyle).Headers("#", "column", "non-null", "dtype")
	for i, col := range desc.Info {
		info.Row(strconv.Itoa(i), col.Column, strconv.Itoa(col.NonNull), col.DataType)
	}
	fmt.Fprintln(w, info.Render())
}

// PrintLoadMetrics writes the load report
func PrintLoadMetrics(w io.Writer, metrics *catalog.LoadMetrics) {
	if metrics == nil {
		return
	}
	heading(w, "Load")
	fmt.Fprint(w, metrics.GenerateMetricsReport())
	if metrics.IntegrityIssues > 0 {
		warningColor.Fprintf(w, "%d integrity issues, see log\n", metrics.IntegrityIssues)
	}
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w)
	headingColor.Fprintln(w, text)
}

// frameTable renders a gota frame with its column names as headers
func frameTable(df dataframe.DataFrame) string {
	t := table.New().Border(lipgloss.NormalBorder()).BorderStyle(borderStyle).Headers(df.Names()...)
	for _, record := range df.Records()[1:] {
		row := make([]string, len(record))
		for i, cell := range record {
			row[i] = truncate(cell, maxCellWidth)
		}
		t.Row(row...)
	}
	return t.Render()
}

func numericTable(summaries []aggregate.NumericSummary) string {
	t := table.New().Border(lipgloss.NormalBorder()).BorderStyle(borderStyle).
		Headers("", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range summaries {
		t.Row(s.Column, strconv.Itoa(s.Count),
			formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min),
			formatFloat(s.Q25), formatFloat(s.Q50), formatFloat(s.Q75), formatFloat(s.Max))
	}
	return t.Render()
}

func categoricalTable(summaries []aggregate.CategoricalSummary) string {
	t := table.New().Border(lipgloss.NormalBorder()).BorderStyle(borderStyle).
		Headers("", "count", "unique", "top", "freq")
	for _, s := range summaries {
		t.Row(s.Column, strconv.Itoa(s.Count), strconv.Itoa(s.Unique), truncate(s.Top, maxCellWidth), strconv.Itoa(s.Freq))
	}
	return t.Render()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
