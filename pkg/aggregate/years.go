// pkg/aggregate/years.go
package aggregate

import (
	"sort"
	"strconv"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
)

// YearField selects a year column
type YearField string

const (
	ReleaseYear YearField = model.ColumnReleaseYear
	YearAdded   YearField = model.ColumnYearAdded
)

// Value returns the year of t, or false when it is missing
func (f YearField) Value(t model.Title) (int, bool) {
	switch f {
	case ReleaseYear:
		return t.ReleaseYear, true
	case YearAdded:
		if t.YearAdded == nil {
			return 0, false
		}
		return *t.YearAdded, true
	default:
		return 0, false
	}
}

// YearCount is one bar of a year distribution
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearCounts counts titles per year, sorted by year ascending. Missing years
// are skipped.
func YearCounts(c *catalog.Catalog, field YearField) []YearCount {
	counts := make(map[int]int)
	c.Each(func(_ int, t model.Title) {
		if year, ok := field.Value(t); ok {
			counts[year]++
		}
	})

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// AsCounts converts year counts to labelled counts for the bar renderers
func AsCounts(years []YearCount) []Count {
	out := make([]Count, len(years))
	for i, y := range years {
		out[i] = Count{Value: strconv.Itoa(y.Year), Count: y.Count}
	}
	return out
}

// GroupedCounts holds year_added x type counts. Counts[s][i] is the count of
// Series[s] in Years[i].
type GroupedCounts struct {
	Years  []int    `json:"years"`
	Series []string `json:"series"`
	Counts [][]int  `json:"counts"`
}

// TypeByYear groups titles by year added and content type. Rows without a
// year added are skipped. Series follow the known type order, then any other
// raw type in first-appearance order.
func TypeByYear(c *catalog.Catalog) GroupedCounts {
	type key struct {
		year int
		typ  string
	}
	counts := make(map[key]int)
	years := make(map[int]bool)
	seriesSeen := make(map[string]bool)
	var extra []string

	c.Each(func(_ int, t model.Title) {
		year, ok := YearAdded.Value(t)
		if !ok {
			return
		}
		typ := string(t.Type)
		counts[key{year, typ}]++
		years[year] = true
		if !seriesSeen[typ] {
			seriesSeen[typ] = true
			if typ != string(model.ContentTypeMovie) && typ != string(model.ContentTypeTVShow) {
				extra = append(extra, typ)
			}
		}
	})

	grouped := GroupedCounts{}
	for year := range years {
		grouped.Years = append(grouped.Years, year)
	}
	sort.Ints(grouped.Years)

	for _, ct := range model.KnownContentTypes() {
		if seriesSeen[string(ct)] {
			grouped.Series = append(grouped.Series, string(ct))
		}
	}
	grouped.Series = append(grouped.Series, extra...)

	grouped.Counts = make([][]int, len(grouped.Series))
	for s, typ := range grouped.Series {
		grouped.Counts[s] = make([]int, len(grouped.Years))
		for i, year := range grouped.Years {
			grouped.Counts[s][i] = counts[key{year, typ}]
		}
	}
	return grouped
}

// YearPair is one (release year, year added) observation
type YearPair struct {
	ReleaseYear int `json:"releaseYear"`
	YearAdded   int `json:"yearAdded"`
}

// YearPairs returns the pairs of rows that have a year added, in row order
func YearPairs(c *catalog.Catalog) []YearPair {
	pairs := make([]YearPair, 0, c.Len())
	c.Each(func(_ int, t model.Title) {
		if t.YearAdded != nil {
			pairs = append(pairs, YearPair{ReleaseYear: t.ReleaseYear, YearAdded: *t.YearAdded})
		}
	})
	return pairs
}
