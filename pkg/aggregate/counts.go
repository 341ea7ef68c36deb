// pkg/aggregate/counts.go
package aggregate

import (
	"sort"
	"strings"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
)

// DefaultTopN is the row limit of the ranked charts
const DefaultTopN = 10

// Field selects a categorical column of a title
type Field string

const (
	FieldType     Field = model.ColumnType
	FieldDirector Field = model.ColumnDirector
	FieldCountry  Field = model.ColumnCountry
	FieldRating   Field = model.ColumnRating
	FieldDuration Field = model.ColumnDuration
	FieldListedIn Field = model.ColumnListedIn
)

// Value returns the field of t
func (f Field) Value(t model.Title) string {
	switch f {
	case FieldType:
		return string(t.Type)
	case FieldDirector:
		return t.Director
	case FieldCountry:
		return t.Country
	case FieldRating:
		return t.Rating
	case FieldDuration:
		return t.Duration
	case FieldListedIn:
		return t.ListedIn
	default:
		return ""
	}
}

// Count is one row of a ranked summary table
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// counter accumulates counts and remembers first appearance
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(value string) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// ranked returns the counts by descending count, ties in first-appearance order
func (c *counter) ranked() []Count {
	out := make([]Count, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Count{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// ValueCounts counts each distinct value of a single-valued field. Empty
// values are treated as missing and skipped.
func ValueCounts(c *catalog.Catalog, field Field) []Count {
	counter := newCounter()
	c.Each(func(_ int, t model.Title) {
		if v := field.Value(t); v != "" {
			counter.add(v)
		}
	})
	return counter.ranked()
}

// Exploded splits each value of a multi-valued field on ", " and counts every
// piece. Pieces are trimmed and empty pieces from stray delimiters are
// skipped.
func Exploded(c *catalog.Catalog, field Field) []Count {
	counter := newCounter()
	c.Each(func(_ int, t model.Title) {
		v := field.Value(t)
		if v == "" {
			return
		}
		for _, piece := range model.Split(v) {
			if piece = strings.TrimSpace(piece); piece != "" {
				counter.add(piece)
			}
		}
	})
	return counter.ranked()
}

// Top returns the first n rows of a ranked table
func Top(counts []Count, n int) []Count {
	if n < 0 {
		n = 0
	}
	if n > len(counts) {
		n = len(counts)
	}
	out := make([]Count, n)
	copy(out, counts[:n])
	return out
}

// TopExploded is Top(Exploded(c, field), n)
func TopExploded(c *catalog.Catalog, field Field, n int) []Count {
	return Top(Exploded(c, field), n)
}

// TypeCounts counts titles per content type. Known types are always present,
// with zero when absent; other raw values follow.
func TypeCounts(c *catalog.Catalog) []Count {
	counts := ValueCounts(c, FieldType)
	seen := make(map[string]bool, len(counts))
	for _, row := range counts {
		seen[row.Value] = true
	}
	for _, ct := range model.KnownContentTypes() {
		if !seen[string(ct)] {
			counts = append(counts, Count{Value: string(ct), Count: 0})
		}
	}
	return counts
}

// Totals are the dashboard headline metrics
type Totals struct {
	Total  int `json:"total"`
	Movies int `json:"movies"`
	Series int `json:"series"`
}

// Headline counts all titles, movies and TV shows
func Headline(c *catalog.Catalog) Totals {
	var totals Totals
	c.Each(func(_ int, t model.Title) {
		totals.Total++
		switch t.Type {
		case model.ContentTypeMovie:
			totals.Movies++
		case model.ContentTypeTVShow:
			totals.Series++
		}
	})
	return totals
}
