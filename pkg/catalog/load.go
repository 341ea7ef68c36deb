// pkg/catalog/load.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/cleaner"
	"github.com/David-Botos/catalog-eda/pkg/connector"
)

// Load reads the source, cleans every row and returns the immutable catalog.
// Any returned error is fatal for the run.
func Load(ctx context.Context, source connector.Source, dc *cleaner.DataCleaner, logger *zap.Logger) (*Catalog, *LoadMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("catalog")

	metrics := NewLoadMetrics(source.Name())

	df, err := source.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	stats := connector.GetFrameStats(df)
	metrics.RowsRead = stats.Rows
	metrics.Columns = stats.Columns
	for col, n := range stats.Missing {
		metrics.MissingValues[col] = n
	}

	titles, operations, err := dc.CleanFrame(df)
	if err != nil {
		var rowErr *cleaner.RowError
		if errors.As(err, &rowErr) {
			return nil, nil, &connector.ParseError{
				Path:   source.Name(),
				Line:   rowErr.Row + 2, // header is line 1
				Column: rowErr.Column,
				Err:    fmt.Errorf("value %q: %w", rowErr.Value, rowErr.Err),
			}
		}
		return nil, nil, &connector.ParseError{Path: source.Name(), Err: err}
	}

	for _, op := range operations {
		metrics.RecordCleaningOperation(op.CleaningOperation)
	}

	c := New(titles)

	issues := NewVerifier(dc.Sentinel(), logger).VerifyIntegrity(c)
	metrics.IntegrityIssues = len(issues)

	metrics.Complete()
	logger.Info("Catalog loaded",
		zap.String("source", source.Name()),
		zap.Int("rows", c.Len()),
		zap.Int("cleaningOps", metrics.TotalCleaningOps),
		zap.Int("integrityIssues", len(issues)),
		zap.Duration("duration", metrics.Duration()))

	if body, err := metrics.ToJSON(); err != nil {
		logger.Warn("Failed to encode load metrics", zap.Error(err))
	} else {
		logger.Debug("Load metrics", zap.ByteString("metrics", body))
	}

	return c, metrics, nil
}
