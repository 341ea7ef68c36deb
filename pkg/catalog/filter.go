// pkg/catalog/filter.go
package catalog

import (
	"strconv"
	"strings"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

// AllOption is the control value meaning "no restriction"
const AllOption = "All"

// DefaultYearFrom is the default lower bound of the release-year range
const DefaultYearFrom = 2010

// Selection is the complete filter state of the dashboard controls
type Selection struct {
	Type      model.ContentType // empty means all types
	YearMin   int
	YearMax   int
	Countries []string // empty or containing AllOption means all countries
}

// AllCountries reports whether the country control imposes no restriction
func (s Selection) AllCountries() bool {
	if len(s.Countries) == 0 {
		return true
	}
	for _, country := range s.Countries {
		if country == AllOption {
			return true
		}
	}
	return false
}

// TypeOption returns the control value for the type select
func (s Selection) TypeOption() string {
	if s.Type == "" {
		return AllOption
	}
	return string(s.Type)
}

// Matches reports whether a single row satisfies every predicate
func (s Selection) Matches(t model.Title) bool {
	if s.Type != "" && t.Type != s.Type {
		return false
	}
	if t.ReleaseYear < s.YearMin || t.ReleaseYear > s.YearMax {
		return false
	}
	if s.AllCountries() {
		return true
	}
	for _, country := range s.Countries {
		if country != "" && strings.Contains(t.Country, country) {
			return true
		}
	}
	return false
}

// Filter returns the rows of c matching sel, in their original order
func Filter(c *Catalog, sel Selection) *Catalog {
	rows := make([]model.Title, 0, c.Len())
	c.Each(func(_ int, t model.Title) {
		if sel.Matches(t) {
			rows = append(rows, t)
		}
	})
	return &Catalog{rows: rows}
}

// AllSelection selects every row of c
func AllSelection(c *Catalog) Selection {
	min, max, _ := c.YearBounds()
	return Selection{YearMin: min, YearMax: max}
}

// DefaultSelection is the initial dashboard state: all types, all countries
// and release years from yearFrom (bounded by the data) to the newest year
func DefaultSelection(c *Catalog, yearFrom int) Selection {
	min, max, _ := c.YearBounds()
	lower := yearFrom
	if lower < min {
		lower = min
	}
	if lower > max {
		lower = max
	}
	return Selection{YearMin: lower, YearMax: max}
}

// ParseSelection builds a Selection from raw control values. Invalid or
// missing values fall back to the defaults; years are clamped to the
// catalog bounds and swapped when reversed.
func ParseSelection(c *Catalog, typeOption, yearMin, yearMax string, countries []string, yearFrom int) Selection {
	sel := DefaultSelection(c, yearFrom)
	min, max, _ := c.YearBounds()

	switch model.ContentType(strings.TrimSpace(typeOption)) {
	case model.ContentTypeMovie:
		sel.Type = model.ContentTypeMovie
	case model.ContentTypeTVShow:
		sel.Type = model.ContentTypeTVShow
	}

	if v, err := strconv.Atoi(strings.TrimSpace(yearMin)); err == nil {
		sel.YearMin = clamp(v, min, max)
	}
	if v, err := strconv.Atoi(strings.TrimSpace(yearMax)); err == nil {
		sel.YearMax = clamp(v, min, max)
	}
	if sel.YearMin > sel.YearMax {
		sel.YearMin, sel.YearMax = sel.YearMax, sel.YearMin
	}

	for _, country := range countries {
		if country = strings.TrimSpace(country); country != "" {
			sel.Countries = append(sel.Countries, country)
		}
	}
	if sel.AllCountries() {
		sel.Countries = nil
	}

	return sel
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
