// pkg/connector/connector.go
package connector

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Source defines the interface for catalog sources
type Source interface {
	// Name identifies the source in logs and errors
	Name() string

	// Read loads the raw table. Every column is a string series and empty
	// cells are NaN.
	Read(ctx context.Context) (dataframe.DataFrame, error)
}

// FrameStats contains standardized statistics about a loaded frame
type FrameStats struct {
	Rows    int
	Columns int
	Missing map[string]int
}

// GetFrameStats returns row, column and missing-value counts for logging
func GetFrameStats(df dataframe.DataFrame) FrameStats {
	rows, cols := df.Dims()
	stats := FrameStats{
		Rows:    rows,
		Columns: cols,
		Missing: make(map[string]int, cols),
	}
	for _, name := range df.Names() {
		col := df.Col(name)
		missing := 0
		for i := 0; i < col.Len(); i++ {
			if col.Elem(i).IsNA() {
				missing++
			}
		}
		stats.Missing[name] = missing
	}
	return stats
}

// LogFrameStats logs frame statistics
func LogFrameStats(logger *zap.Logger, name string, df dataframe.DataFrame) {
	stats := GetFrameStats(df)
	fields := []zap.Field{
		zap.String("source", name),
		zap.Int("rows", stats.Rows),
		zap.Int("columns", stats.Columns),
	}
	for col, missing := range stats.Missing {
		if missing > 0 {
			fields = append(fields, zap.Int("missing_"+col, missing))
		}
	}
	logger.Debug("Frame stats", fields...)
}
