// pkg/render/interactive.go
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
)

// Default interactive panel size
const (
	PanelWidth  = "900px"
	PanelHeight = "420px"
)

// PieHole is the inner radius of the donut chart as a share of the outer one
const PieHole = 0.4

// Panel is one interactive chart with its stable id
type Panel struct {
	ID    string
	Title string
	Kind  Kind
	Empty bool
	Chart components.Charter
}

func baseOptions(id, title string, empty bool) []charts.GlobalOpts {
	t := opts.Title{Title: title}
	if empty {
		t.Subtitle = NoDataMessage
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   PanelWidth,
			Height:  PanelHeight,
		}),
		charts.WithTitleOpts(t),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// BarPanel renders counts as a single-series bar chart
func BarPanel(id, title, xName, yName string, counts []aggregate.Count) Panel {
	empty := len(counts) == 0
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(id, title, empty)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		data[i] = opts.BarData{Name: c.Value, Value: c.Count}
	}
	bar.SetXAxis(labels).AddSeries(yName, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: Hex(SteelBlue)}),
	)

	return Panel{ID: id, Title: title, Kind: KindBar, Empty: empty, Chart: bar}
}

// GroupedBarPanel renders one bar series per group side by side
func GroupedBarPanel(id, title, xName, yName string, grouped aggregate.GroupedCounts) Panel {
	empty := len(grouped.Years) == 0
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(id, title, empty)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "10%"}),
	)

	labels := make([]string, len(grouped.Years))
	for i, year := range grouped.Years {
		labels[i] = strconv.Itoa(year)
	}
	bar.SetXAxis(labels)

	for s, name := range grouped.Series {
		data := make([]opts.BarData, len(grouped.Years))
		for i := range grouped.Years {
			data[i] = opts.BarData{Value: grouped.Counts[s][i]}
		}
		bar.AddSeries(name, data)
	}

	return Panel{ID: id, Title: title, Kind: KindBar, Empty: empty, Chart: bar}
}

// PiePanel renders counts as a donut chart
func PiePanel(id, title string, counts []aggregate.Count, hole float64) Panel {
	empty := len(counts) == 0
	pie := charts.NewPie()
	pie.SetGlobalOptions(baseOptions(id, title, empty)...)
	pie.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: true, Orient: "vertical", Left: "left", Top: "middle"}))

	data := make([]opts.PieData, len(counts))
	for i, c := range counts {
		data[i] = opts.PieData{Name: c.Value, Value: c.Count}
	}
	pie.AddSeries(title, data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{fmt.Sprintf("%.0f%%", hole*75), "75%"},
		}),
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
	)

	return Panel{ID: id, Title: title, Kind: KindPie, Empty: empty, Chart: pie}
}

// HistogramPanel renders histogram bins as adjacent bars
func HistogramPanel(id, title, xName string, bins []aggregate.Bin) Panel {
	empty := len(bins) == 0
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(id, title, empty)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = b.Label()
		data[i] = opts.BarData{Name: b.Label(), Value: b.Count}
	}
	bar.SetXAxis(labels).AddSeries("count", data,
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
	)

	return Panel{ID: id, Title: title, Kind: KindHistogram, Empty: empty, Chart: bar}
}

// HeatmapPanel renders a binned 2D density with a Viridis scale
func HeatmapPanel(id, title, xName, yName string, grid aggregate.Grid) Panel {
	empty := grid.Empty()
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(baseOptions(id, title, empty)...)

	xLabels := edgeLabels(grid.XEdges)
	yLabels := edgeLabels(grid.YEdges)

	hm.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "category", Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(grid.Max),
			InRange:    &opts.VisualMapInRange{Color: Viridis},
		}),
	)

	var data []opts.HeatMapData
	for x := range grid.Counts {
		for y, n := range grid.Counts[x] {
			if n > 0 {
				data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, n}})
			}
		}
	}
	hm.SetXAxis(xLabels).AddSeries("count", data)

	return Panel{ID: id, Title: title, Kind: KindHeatmap, Empty: empty, Chart: hm}
}

// edgeLabels names each cell by its lower edge
func edgeLabels(edges []float64) []string {
	if len(edges) < 2 {
		return nil
	}
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = strconv.FormatFloat(edges[i], 'f', 1, 64)
	}
	return labels
}

// RenderPage writes the panels as one standalone HTML page
func RenderPage(w io.Writer, title string, panels []Panel) error {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	for _, p := range panels {
		page.AddCharts(p.Chart)
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
