// pkg/report/charts.go
package report

import (
	"image/color"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/render"
)

// ChartStep is one entry of the fixed chart sequence. Build runs the
// aggregation and rendering for that chart only.
type ChartStep struct {
	Name  string
	Build func() (*render.Static, error)
}

// Options sets the row limits of the ranked charts
type Options struct {
	TopN         int
	DurationTopN int
}

// DefaultOptions returns top 10 for rankings and top 20 for durations
func DefaultOptions() Options {
	return Options{TopN: aggregate.DefaultTopN, DurationTopN: 20}
}

// Sequence returns the eight report charts in display order
func Sequence(c *catalog.Catalog, o Options) []ChartStep {
	bar := func(name, title, xLabel, yLabel string, counts func() []aggregate.Count, colors ...color.Color) ChartStep {
		return ChartStep{
			Name: name,
			Build: func() (*render.Static, error) {
				return render.Bar(render.BarSpec{
					Name:   name,
					Title:  title,
					XLabel: xLabel,
					YLabel: yLabel,
					Counts: counts(),
					Colors: colors,
				})
			},
		}
	}

	return []ChartStep{
		bar("type-distribution", "Content type distribution", "Type", "Count",
			func() []aggregate.Count { return aggregate.ValueCounts(c, aggregate.FieldType) },
			render.SkyBlue, render.Salmon),
		bar("release-year", "Titles by release year", "Year", "Count",
			func() []aggregate.Count { return aggregate.AsCounts(aggregate.YearCounts(c, aggregate.ReleaseYear)) },
			render.Orange),
		bar("top-countries", "Top production countries", "Country", "Count",
			func() []aggregate.Count { return aggregate.TopExploded(c, aggregate.FieldCountry, o.TopN) },
			render.Green),
		bar("year-added", "Titles by year added", "Year added", "Count",
			func() []aggregate.Count { return aggregate.AsCounts(aggregate.YearCounts(c, aggregate.YearAdded)) },
			render.Purple),
		bar("top-genres", "Most frequent genres", "Genre", "Count",
			func() []aggregate.Count { return aggregate.TopExploded(c, aggregate.FieldListedIn, o.TopN) },
			render.Teal),
		{
			Name: "release-vs-added",
			Build: func() (*render.Static, error) {
				return render.Scatter(render.ScatterSpec{
					Name:   "release-vs-added",
					Title:  "Release year vs year added",
					XLabel: "Release year",
					YLabel: "Year added",
					Pairs:  aggregate.YearPairs(c),
					Color:  render.Gray,
					Alpha:  0.5,
				})
			},
		},
		bar("top-durations", "Top content durations", "Duration", "Frequency",
			func() []aggregate.Count {
				return aggregate.Top(aggregate.ValueCounts(c, aggregate.FieldDuration), o.DurationTopN)
			},
			render.Coral),
		bar("top-ratings", "Top ratings", "Rating", "Count",
			func() []aggregate.Count {
				return aggregate.Top(aggregate.ValueCounts(c, aggregate.FieldRating), o.TopN)
			},
			render.SteelBlue),
	}
}
