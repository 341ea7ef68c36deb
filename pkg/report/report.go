// pkg/report/report.go
package report

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/cleaner"
	"github.com/David-Botos/catalog-eda/pkg/config"
	"github.com/David-Botos/catalog-eda/pkg/connector"
)

// Runner executes the static report end to end
type Runner struct {
	config *config.Config
	viewer Viewer
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a report runner
func NewRunner(cfg *config.Config, viewer Viewer, out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{config: cfg, viewer: viewer, out: out, logger: logger.Named("report")}
}

// NewViewer picks the viewer for the configured display mode
func NewViewer(cfg *config.Config, logger *zap.Logger) (Viewer, error) {
	if cfg.Display.Mode == config.DisplayNone {
		return NewLogViewer(logger), nil
	}
	return NewBrowserViewer(logger)
}

// Run loads the catalog, prints the overview and shows every chart in order.
// The first error aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	dc, err := cleaner.NewDataCleaner(cleaner.Policy{Sentinel: r.config.Sentinel}, r.logger)
	if err != nil {
		return fmt.Errorf("failed to create cleaner: %w", err)
	}

	source := connector.NewCSVSource(r.config.DataPath, r.logger, connector.WithMetadata(dc.Metadata()))
	c, metrics, err := catalog.Load(ctx, source, dc, r.logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	PrintOverview(r.out, c)
	PrintLoadMetrics(r.out, metrics)

	steps := Sequence(c, Options{TopN: r.config.TopN, DurationTopN: r.config.DurationTopN})
	for i, step := range steps {
		chart, err := step.Build()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", step.Name, err)
		}

		r.logger.Debug("Chart ready",
			zap.Int("step", i+1),
			zap.Int("of", len(steps)),
			zap.String("chart", step.Name))

		if err := r.viewer.Show(ctx, chart); err != nil {
			return fmt.Errorf("failed to display %s: %w", step.Name, err)
		}
	}

	r.logger.Info("Report complete", zap.Int("charts", len(steps)))
	return nil
}
