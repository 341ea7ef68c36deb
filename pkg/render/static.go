// pkg/render/static.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
)

// Kind tags the chart type
type Kind string

const (
	KindBar       Kind = "bar"
	KindScatter   Kind = "scatter"
	KindPie       Kind = "pie"
	KindHistogram Kind = "histogram"
	KindHeatmap   Kind = "heatmap"
)

// NoDataMessage is shown when a chart has nothing to draw
const NoDataMessage = "no data for this selection"

// Default static image size
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Static is a rendered chart ready to be written as an image
type Static struct {
	Name   string
	Title  string
	Kind   Kind
	Points int // number of bars or markers drawn
	Empty  bool

	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

// WritePNG encodes the chart as PNG
func (s *Static) WritePNG(w io.Writer) error {
	if s.plot == nil {
		return errors.New("chart has no plot")
	}
	wt, err := s.plot.WriterTo(s.width, s.height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

// SavePNG writes the chart to path
func (s *Static) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// BarSpec describes a static bar chart. Colors cycle over the bars; a single
// color paints every bar.
type BarSpec struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Counts []aggregate.Count
	Colors []color.Color
	Width  vg.Length
	Height vg.Length
}

// Bar renders counts as vertical bars in the given order
func Bar(spec BarSpec) (*Static, error) {
	p := newPlot(spec.Title, spec.XLabel, spec.YLabel)
	s := newStatic(spec.Name, spec.Title, KindBar, p, spec.Width, spec.Height)

	if len(spec.Counts) == 0 {
		markEmpty(s)
		return s, nil
	}

	colors := spec.Colors
	if len(colors) == 0 {
		colors = []color.Color{SteelBlue}
	}

	barWidth := barWidthFor(len(spec.Counts), s.width)
	labels := make([]string, len(spec.Counts))

	if len(colors) == 1 {
		values := make(plotter.Values, len(spec.Counts))
		for i, c := range spec.Counts {
			values[i] = float64(c.Count)
			labels[i] = c.Value
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build bar chart %s: %w", spec.Name, err)
		}
		styleBars(bars, colors[0])
		p.Add(bars)
	} else {
		// One chart per bar so each can take its own color
		for i, c := range spec.Counts {
			labels[i] = c.Value
			bars, err := plotter.NewBarChart(plotter.Values{float64(c.Count)}, barWidth)
			if err != nil {
				return nil, fmt.Errorf("failed to build bar %d of %s: %w", i, spec.Name, err)
			}
			bars.XMin = float64(i)
			styleBars(bars, colors[i%len(colors)])
			p.Add(bars)
		}
	}

	p.NominalX(labels...)
	if len(labels) > 6 {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}
	p.Y.Min = 0

	s.Points = len(spec.Counts)
	return s, nil
}

// ScatterSpec describes a static scatter plot of year pairs
type ScatterSpec struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Pairs  []aggregate.YearPair
	Color  color.Color
	Alpha  float64
	Width  vg.Length
	Height vg.Length
}

// Scatter renders one marker per pair
func Scatter(spec ScatterSpec) (*Static, error) {
	p := newPlot(spec.Title, spec.XLabel, spec.YLabel)
	s := newStatic(spec.Name, spec.Title, KindScatter, p, spec.Width, spec.Height)

	if len(spec.Pairs) == 0 {
		markEmpty(s)
		return s, nil
	}

	xys := make(plotter.XYs, len(spec.Pairs))
	for i, pair := range spec.Pairs {
		xys[i].X = float64(pair.ReleaseYear)
		xys[i].Y = float64(pair.YearAdded)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter %s: %w", spec.Name, err)
	}

	c := spec.Color
	if c == nil {
		c = Gray
	}
	alpha := spec.Alpha
	if alpha == 0 {
		alpha = 1
	}
	scatter.GlyphStyle.Color = WithAlpha(c, alpha)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(scatter)

	s.Points = len(spec.Pairs)
	return s, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func newStatic(name, title string, kind Kind, p *plot.Plot, width, height vg.Length) *Static {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return &Static{Name: name, Title: title, Kind: kind, plot: p, width: width, height: height}
}

// markEmpty turns the plot into a "no data" placeholder
func markEmpty(s *Static) {
	s.Empty = true
	s.plot.Title.Text = fmt.Sprintf("%s (%s)", s.Title, NoDataMessage)
	s.plot.X.Min, s.plot.X.Max = 0, 1
	s.plot.Y.Min, s.plot.Y.Max = 0, 1
}

func styleBars(bars *plotter.BarChart, c color.Color) {
	bars.Color = c
	bars.LineStyle.Width = vg.Length(0)
}

// barWidthFor keeps bars narrower than their slot on the nominal axis
func barWidthFor(n int, plotWidth vg.Length) vg.Length {
	w := plotWidth / vg.Length(n+2) * 0.7
	if w > vg.Points(40) {
		w = vg.Points(40)
	}
	if w < vg.Points(2) {
		w = vg.Points(2)
	}
	return w
}
