// pkg/aggregate/histogram.go
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
)

// DurationBins is the bin count of the movie duration histogram
const DurationBins = 30

// Bin is one equal-width histogram bucket [Lo, Hi)
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Label formats the bucket bounds for axis labels
func (b Bin) Label() string {
	return fmt.Sprintf("%.0f-%.0f", b.Lo, b.Hi)
}

// MovieDurations returns the numeric duration of every movie that has one
func MovieDurations(c *catalog.Catalog) []float64 {
	var values []float64
	c.Each(func(_ int, t model.Title) {
		if t.IsMovie() && t.DurationMinutes != nil {
			values = append(values, float64(*t.DurationMinutes))
		}
	})
	return values
}

// HasMovies reports whether c contains at least one movie
func HasMovies(c *catalog.Catalog) bool {
	found := false
	c.Each(func(_ int, t model.Title) {
		if t.IsMovie() {
			found = true
		}
	})
	return found
}

// Histogram bins values into n equal-width buckets spanning their range.
// The maximum value falls in the last bucket.
func Histogram(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	dividers := spanDividers(sorted[0], sorted[len(sorted)-1], n)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{Lo: dividers[i], Hi: dividers[i+1], Count: int(counts[i])}
	}
	// Report the nominal upper edge rather than the widened one
	bins[n-1].Hi = dividers[n-1] + (dividers[1] - dividers[0])
	return bins
}

// spanDividers returns n+1 evenly spaced edges from lo to hi, with the last
// edge nudged up so hi itself is counted
func spanDividers(lo, hi float64, n int) []float64 {
	if lo == hi {
		hi = lo + 1
	}
	dividers := make([]float64, n+1)
	floats.Span(dividers, lo, hi)
	dividers[n] = math.Nextafter(hi, math.Inf(1))
	return dividers
}
