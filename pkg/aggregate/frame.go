// pkg/aggregate/frame.go
package aggregate

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/model"
)

// Frame returns the cleaned catalog as a gota frame for tabular printing.
// Text columns are strings; numeric columns are floats with NaN for missing.
func Frame(c *catalog.Catalog) dataframe.DataFrame {
	rows := c.Rows()

	columns := make([]series.Series, 0, len(textColumns)+len(numericColumns))
	for _, col := range textColumns {
		values := make([]string, len(rows))
		for i, t := range rows {
			values[i] = col.value(t)
		}
		columns = append(columns, series.New(values, series.String, col.name))
	}
	for _, col := range numericColumns {
		if col.name == model.ColumnReleaseYear {
			values := make([]int, len(rows))
			for i, t := range rows {
				values[i] = t.ReleaseYear
			}
			columns = append(columns, series.New(values, series.Int, col.name))
			continue
		}
		values := make([]float64, len(rows))
		for i, t := range rows {
			if v, ok := col.value(t); ok {
				values[i] = v
			} else {
				values[i] = math.NaN()
			}
		}
		columns = append(columns, series.New(values, series.Float, col.name))
	}

	return dataframe.New(columns...)
}

// Head returns the first n rows of the frame; n <= 0 returns every row
func Head(c *catalog.Catalog, n int) dataframe.DataFrame {
	df := Frame(c)
	if n > df.Nrow() {
		n = df.Nrow()
	}
	if n <= 0 || n == df.Nrow() {
		return df
	}

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	return df.Subset(indexes)
}
