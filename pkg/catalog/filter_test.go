package catalog

import (
	"testing"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

func exampleCatalog() *Catalog {
	return New([]model.Title{
		{ShowID: "a", Country: "India, France", Type: model.ContentTypeMovie, ReleaseYear: 2015},
		{ShowID: "b", Country: "India", Type: model.ContentTypeTVShow, ReleaseYear: 2020},
	})
}

func ids(c *Catalog) []string {
	var out []string
	c.Each(func(_ int, t model.Title) {
		out = append(out, t.ShowID)
	})
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterYearRange(t *testing.T) {
	c := exampleCatalog()
	got := Filter(c, Selection{YearMin: 2018, YearMax: 2021})

	if !equalIDs(ids(got), []string{"b"}) {
		t.Errorf("Expected [b], got %v", ids(got))
	}
	if c.Len() != 2 {
		t.Error("Filter must not modify its input")
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	c := exampleCatalog()
	got := Filter(c, Selection{YearMin: 2015, YearMax: 2020})
	if got.Len() != 2 {
		t.Errorf("Expected both rows at inclusive bounds, got %d", got.Len())
	}
}

func TestFilterType(t *testing.T) {
	c := exampleCatalog()
	got := Filter(c, Selection{Type: model.ContentTypeMovie, YearMin: 1900, YearMax: 2100})
	if !equalIDs(ids(got), []string{"a"}) {
		t.Errorf("Expected [a], got %v", ids(got))
	}
}

func TestFilterCountries(t *testing.T) {
	c := New([]model.Title{
		{ShowID: "a", Country: "India, France", ReleaseYear: 2015},
		{ShowID: "b", Country: "India", ReleaseYear: 2020},
		{ShowID: "c", Country: "Niger", ReleaseYear: 2020},
		{ShowID: "d", Country: "Nigeria", ReleaseYear: 2020},
	})

	tests := []struct {
		name      string
		countries []string
		want      []string
	}{
		{"none selected", nil, []string{"a", "b", "c", "d"}},
		{"all marker", []string{"France", AllOption}, []string{"a", "b", "c", "d"}},
		{"single", []string{"France"}, []string{"a"}},
		{"or", []string{"France", "India"}, []string{"a", "b"}},
		{"substring collision", []string{"Niger"}, []string{"c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(c, Selection{YearMin: 1900, YearMax: 2100, Countries: tt.countries})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := exampleCatalog()
	sel := Selection{Type: model.ContentTypeTVShow, YearMin: 2010, YearMax: 2021, Countries: []string{"India"}}

	once := Filter(c, sel)
	twice := Filter(once, sel)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("Expected idempotent filter, got %v then %v", ids(once), ids(twice))
	}
}

func TestFilterAllSelection(t *testing.T) {
	c := exampleCatalog()
	got := Filter(c, AllSelection(c))
	if !equalIDs(ids(got), ids(c)) {
		t.Errorf("Expected unchanged rows, got %v", ids(got))
	}
}

func TestParseSelection(t *testing.T) {
	c := New([]model.Title{
		{ShowID: "a", ReleaseYear: 1990},
		{ShowID: "b", ReleaseYear: 2021},
	})

	sel := ParseSelection(c, "", "", "", nil, DefaultYearFrom)
	if sel.Type != "" || sel.YearMin != 2010 || sel.YearMax != 2021 || !sel.AllCountries() {
		t.Errorf("Unexpected default selection %+v", sel)
	}

	sel = ParseSelection(c, "TV Show", "1800", "2050", []string{"Brazil", " "}, DefaultYearFrom)
	if sel.Type != model.ContentTypeTVShow {
		t.Errorf("Expected TV Show, got %q", sel.Type)
	}
	if sel.YearMin != 1990 || sel.YearMax != 2021 {
		t.Errorf("Expected clamped years 1990-2021, got %d-%d", sel.YearMin, sel.YearMax)
	}
	if len(sel.Countries) != 1 || sel.Countries[0] != "Brazil" {
		t.Errorf("Expected [Brazil], got %v", sel.Countries)
	}

	sel = ParseSelection(c, "Documentary", "2020", "2000", []string{AllOption}, DefaultYearFrom)
	if sel.Type != "" {
		t.Errorf("Expected unknown type to mean all, got %q", sel.Type)
	}
	if sel.YearMin != 2000 || sel.YearMax != 2020 {
		t.Errorf("Expected swapped years 2000-2020, got %d-%d", sel.YearMin, sel.YearMax)
	}
	if sel.Countries != nil {
		t.Errorf("Expected no country restriction, got %v", sel.Countries)
	}
	if sel.TypeOption() != AllOption {
		t.Errorf("Expected All type option, got %s", sel.TypeOption())
	}
}

func TestDefaultSelectionOldCatalog(t *testing.T) {
	c := New([]model.Title{{ReleaseYear: 1980}, {ReleaseYear: 1999}})
	sel := DefaultSelection(c, DefaultYearFrom)
	if sel.YearMin != 1999 || sel.YearMax != 1999 {
		t.Errorf("Expected default lower bound clamped to 1999, got %d-%d", sel.YearMin, sel.YearMax)
	}
}
