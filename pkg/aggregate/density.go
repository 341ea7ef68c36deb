// pkg/aggregate/density.go
package aggregate

import (
	"gonum.org/v1/gonum/floats"
)

// DensityBins is the default bin count of each heatmap axis
const DensityBins = 20

// Grid is a 2D binned count of year pairs. Counts[x][y] belongs to the cell
// [XEdges[x], XEdges[x+1]) x [YEdges[y], YEdges[y+1]).
type Grid struct {
	XEdges []float64 `json:"xEdges"`
	YEdges []float64 `json:"yEdges"`
	Counts [][]int   `json:"counts"`
	Max    int       `json:"max"`
}

// Empty reports whether the grid holds no observations
func (g Grid) Empty() bool {
	return len(g.Counts) == 0
}

// Density2D bins release year (x) against year added (y) into nx*ny cells
func Density2D(pairs []YearPair, nx, ny int) Grid {
	if len(pairs) == 0 || nx <= 0 || ny <= 0 {
		return Grid{}
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = float64(p.ReleaseYear)
		ys[i] = float64(p.YearAdded)
	}

	grid := Grid{
		XEdges: edges(floats.Min(xs), floats.Max(xs), nx),
		YEdges: edges(floats.Min(ys), floats.Max(ys), ny),
		Counts: make([][]int, nx),
	}
	for i := range grid.Counts {
		grid.Counts[i] = make([]int, ny)
	}

	for i := range pairs {
		x := binIndex(xs[i], grid.XEdges)
		y := binIndex(ys[i], grid.YEdges)
		grid.Counts[x][y]++
		if grid.Counts[x][y] > grid.Max {
			grid.Max = grid.Counts[x][y]
		}
	}
	return grid
}

func edges(lo, hi float64, n int) []float64 {
	if lo == hi {
		hi = lo + 1
	}
	out := make([]float64, n+1)
	floats.Span(out, lo, hi)
	return out
}

// binIndex returns the cell of v; the upper edge belongs to the last cell
func binIndex(v float64, edges []float64) int {
	n := len(edges) - 1
	width := (edges[n] - edges[0]) / float64(n)
	idx := int((v - edges[0]) / width)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
