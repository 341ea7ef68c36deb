// pkg/catalog/catalog.go
package catalog

import (
	"sort"
	"strings"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

// Catalog is a read-only, ordered set of cleaned titles. Filtering returns a
// new Catalog; the rows of an existing one never change.
type Catalog struct {
	rows []model.Title
}

// New copies rows into a new catalog
func New(rows []model.Title) *Catalog {
	copied := make([]model.Title, len(rows))
	copy(copied, rows)
	return &Catalog{rows: copied}
}

// Len returns the number of rows
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.rows)
}

// Empty reports whether the catalog has no rows
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// At returns the i-th row
func (c *Catalog) At(i int) model.Title {
	return c.rows[i]
}

// Rows returns a copy of the rows in catalog order
func (c *Catalog) Rows() []model.Title {
	if c == nil {
		return nil
	}
	out := make([]model.Title, len(c.rows))
	copy(out, c.rows)
	return out
}

// Each calls fn for every row in order
func (c *Catalog) Each(fn func(i int, t model.Title)) {
	if c == nil {
		return
	}
	for i, t := range c.rows {
		fn(i, t)
	}
}

// YearBounds returns the smallest and largest release year.
// ok is false for an empty catalog.
func (c *Catalog) YearBounds() (min, max int, ok bool) {
	if c.Empty() {
		return 0, 0, false
	}
	min, max = c.rows[0].ReleaseYear, c.rows[0].ReleaseYear
	for _, t := range c.rows[1:] {
		if t.ReleaseYear < min {
			min = t.ReleaseYear
		}
		if t.ReleaseYear > max {
			max = t.ReleaseYear
		}
	}
	return min, max, true
}

// Countries returns the distinct individual country names, sorted
func (c *Catalog) Countries() []string {
	seen := make(map[string]bool)
	c.Each(func(_ int, t model.Title) {
		for _, country := range model.Split(t.Country) {
			if country = strings.TrimSpace(country); country != "" {
				seen[country] = true
			}
		}
	})

	countries := make([]string, 0, len(seen))
	for country := range seen {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}
