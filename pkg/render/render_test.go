package render

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestBarWritesPNG(t *testing.T) {
	tests := []struct {
		name   string
		colors []color.Color
	}{
		{"single color", []color.Color{Orange}},
		{"palette", []color.Color{SkyBlue, Salmon}},
	}

	counts := []aggregate.Count{{Value: "Movie", Count: 6131}, {Value: "TV Show", Count: 2676}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := Bar(BarSpec{Name: "type", Title: "Content type", Counts: counts, Colors: tt.colors})
			if err != nil {
				t.Fatalf("Bar failed: %v", err)
			}
			if chart.Points != 2 || chart.Empty {
				t.Errorf("Unexpected chart state %+v", chart)
			}

			var buf bytes.Buffer
			if err := chart.WritePNG(&buf); err != nil {
				t.Fatalf("WritePNG failed: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Error("Expected PNG output")
			}
		})
	}
}

func TestBarEmpty(t *testing.T) {
	chart, err := Bar(BarSpec{Name: "countries", Title: "Top countries"})
	if err != nil {
		t.Fatalf("Bar failed: %v", err)
	}
	if !chart.Empty {
		t.Error("Expected empty chart")
	}

	path := filepath.Join(t.TempDir(), "empty.png")
	if err := chart.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}

func TestScatter(t *testing.T) {
	chart, err := Scatter(ScatterSpec{
		Name:  "years",
		Title: "Release vs added",
		Pairs: []aggregate.YearPair{{ReleaseYear: 2019, YearAdded: 2020}, {ReleaseYear: 1995, YearAdded: 2021}},
		Color: Gray,
		Alpha: 0.5,
	})
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	if chart.Kind != KindScatter || chart.Points != 2 {
		t.Errorf("Unexpected chart %+v", chart)
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(Gray, 0.5)
	if c.A != 127 || c.R != 0x80 {
		t.Errorf("Unexpected color %+v", c)
	}
	if Hex(Coral) != "#ff7f50" {
		t.Errorf("Expected #ff7f50, got %s", Hex(Coral))
	}
}

func TestRenderPage(t *testing.T) {
	panels := []Panel{
		BarPanel("yearly", "Yearly additions", "year", "titles", []aggregate.Count{{Value: "2020", Count: 3}}),
		GroupedBarPanel("by-type", "Movie vs TV Show", "year", "titles", aggregate.GroupedCounts{
			Years:  []int{2020},
			Series: []string{"Movie", "TV Show"},
			Counts: [][]int{{2}, {1}},
		}),
		PiePanel("ratings", "Ratings", []aggregate.Count{{Value: "TV-MA", Count: 4}}, PieHole),
		HistogramPanel("durations", "Movie duration", "minutes", aggregate.Histogram([]float64{90, 120}, 30)),
		HeatmapPanel("density", "Release vs added", "release", "added",
			aggregate.Density2D([]aggregate.YearPair{{ReleaseYear: 2019, YearAdded: 2020}}, 20, 20)),
		BarPanel("directors", "Top directors", "director", "titles", nil),
	}

	if !panels[len(panels)-1].Empty {
		t.Error("Expected empty directors panel")
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, "Catalog", panels); err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"yearly", "by-type", "ratings", "durations", "density", NoDataMessage} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}
