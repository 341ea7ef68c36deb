// pkg/dashboard/view.go
package dashboard

import (
	"net/url"
	"strconv"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
	"github.com/David-Botos/catalog-eda/pkg/render"
)

// Query parameter names of the dashboard controls
const (
	ParamType    = "type"
	ParamYearMin = "year_min"
	ParamYearMax = "year_max"
	ParamCountry = "country"
)

// TypeOptions are the content type select values
var TypeOptions = []string{catalog.AllOption, string(model.ContentTypeMovie), string(model.ContentTypeTVShow)}

// Summary is the aggregated state of one selection
type Summary struct {
	Selection       SelectionView           `json:"selection"`
	Totals          aggregate.Totals        `json:"totals"`
	Types           []aggregate.Count       `json:"types"`
	YearlyAdditions []aggregate.YearCount   `json:"yearlyAdditions"`
	TypeByYear      aggregate.GroupedCounts `json:"typeByYear"`
	TopCountries    []aggregate.Count       `json:"topCountries"`
	TopGenres       []aggregate.Count       `json:"topGenres"`
	Ratings         []aggregate.Count       `json:"ratings"`
	TopDirectors    []aggregate.Count       `json:"topDirectors"`
	MovieDurations  []aggregate.Bin         `json:"movieDurations,omitempty"`
	Density         aggregate.Grid          `json:"density"`
}

// SelectionView is the JSON form of a selection
type SelectionView struct {
	Type      string   `json:"type"`
	YearMin   int      `json:"yearMin"`
	YearMax   int      `json:"yearMax"`
	Countries []string `json:"countries"`
}

func newSelectionView(sel catalog.Selection) SelectionView {
	countries := sel.Countries
	if sel.AllCountries() {
		countries = []string{catalog.AllOption}
	}
	return SelectionView{Type: sel.TypeOption(), YearMin: sel.YearMin, YearMax: sel.YearMax, Countries: countries}
}

// Summarize runs every dashboard aggregation over the filtered catalog
func Summarize(filtered *catalog.Catalog, sel catalog.Selection, topN int) Summary {
	summary := Summary{
		Selection:       newSelectionView(sel),
		Totals:          aggregate.Headline(filtered),
		Types:           aggregate.TypeCounts(filtered),
		YearlyAdditions: aggregate.YearCounts(filtered, aggregate.YearAdded),
		TypeByYear:      aggregate.TypeByYear(filtered),
		TopCountries:    aggregate.TopExploded(filtered, aggregate.FieldCountry, topN),
		TopGenres:       aggregate.TopExploded(filtered, aggregate.FieldListedIn, topN),
		Ratings:         aggregate.Top(aggregate.ValueCounts(filtered, aggregate.FieldRating), topN),
		TopDirectors:    aggregate.TopExploded(filtered, aggregate.FieldDirector, topN),
		Density:         aggregate.Density2D(aggregate.YearPairs(filtered), aggregate.DensityBins, aggregate.DensityBins),
	}
	if aggregate.HasMovies(filtered) {
		summary.MovieDurations = aggregate.Histogram(aggregate.MovieDurations(filtered), aggregate.DurationBins)
	}
	return summary
}

// Panels maps a summary to the interactive charts in page order. The
// duration histogram is present only when the selection contains movies.
func Panels(s Summary, hasMovies bool) []render.Panel {
	panels := []render.Panel{
		render.BarPanel("yearly-additions", "Titles added per year", "Year", "Titles added",
			aggregate.AsCounts(s.YearlyAdditions)),
		render.GroupedBarPanel("type-by-year", "Movie vs TV Show by year added", "Year", "Count", s.TypeByYear),
		render.BarPanel("top-countries", "Top 10 production countries", "Country", "Titles", s.TopCountries),
		render.BarPanel("top-genres", "Top genres", "Genre", "Frequency", s.TopGenres),
		render.PiePanel("ratings", "Ratings", s.Ratings, render.PieHole),
		render.BarPanel("top-directors", "Top 10 directors", "Director", "Titles", s.TopDirectors),
	}
	if hasMovies {
		panels = append(panels, render.HistogramPanel("movie-durations", "Movie duration (min)", "Duration (min)", s.MovieDurations))
	}
	panels = append(panels, render.HeatmapPanel("release-vs-added", "Release year vs year added",
		"Release year", "Year added", s.Density))
	return panels
}

// TableRow is one line of the raw data table
type TableRow struct {
	ShowID      string
	Type        string
	Title       string
	Director    string
	Country     string
	DateAdded   string
	ReleaseYear int
	Rating      string
	Duration    string
	ListedIn    string
}

// Table returns at most limit rows of c for display, and whether rows were cut
func Table(c *catalog.Catalog, limit int) ([]TableRow, bool) {
	n := c.Len()
	truncated := false
	if limit > 0 && n > limit {
		n = limit
		truncated = true
	}

	rows := make([]TableRow, 0, n)
	for i := 0; i < n; i++ {
		t := c.At(i)
		dateAdded := ""
		if t.DateAdded != nil {
			dateAdded = t.DateAdded.Format("2006-01-02")
		}
		rows = append(rows, TableRow{
			ShowID:      t.ShowID,
			Type:        string(t.Type),
			Title:       t.Name,
			Director:    t.Director,
			Country:     t.Country,
			DateAdded:   dateAdded,
			ReleaseYear: t.ReleaseYear,
			Rating:      t.Rating,
			Duration:    t.Duration,
			ListedIn:    t.ListedIn,
		})
	}
	return rows, truncated
}

// EncodeSelection turns a selection back into control query parameters
func EncodeSelection(sel catalog.Selection) string {
	q := url.Values{}
	q.Set(ParamType, sel.TypeOption())
	q.Set(ParamYearMin, strconv.Itoa(sel.YearMin))
	q.Set(ParamYearMax, strconv.Itoa(sel.YearMax))
	if sel.AllCountries() {
		q.Add(ParamCountry, catalog.AllOption)
	} else {
		for _, country := range sel.Countries {
			q.Add(ParamCountry, country)
		}
	}
	return q.Encode()
}
