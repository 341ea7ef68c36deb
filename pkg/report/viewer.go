// pkg/report/viewer.go
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/render"
)

// Viewer displays one chart and returns once the user is done with it
type Viewer interface {
	Show(ctx context.Context, chart *render.Static) error
	Close() error
}

// BrowserViewer writes each chart to a run-scoped temporary directory, opens
// it in the default viewer and waits for Enter
type BrowserViewer struct {
	dir    string
	open   func(path string) error
	wait   func(message string) error
	logger *zap.Logger
}

// NewBrowserViewer creates the temporary directory for this run
func NewBrowserViewer(logger *zap.Logger) (*BrowserViewer, error) {
	dir, err := os.MkdirTemp("", "catalog-report-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowserViewer{
		dir:    dir,
		open:   browser.OpenFile,
		wait:   promptEnter,
		logger: logger.Named("viewer"),
	}, nil
}

// Show writes, opens and waits on the chart
func (v *BrowserViewer) Show(ctx context.Context, chart *render.Static) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(v.dir, chart.Name+".png")
	if err := chart.SavePNG(path); err != nil {
		return err
	}

	v.logger.Info("Displaying chart",
		zap.String("chart", chart.Name),
		zap.String("path", path))

	if err := v.open(path); err != nil {
		return fmt.Errorf("failed to open chart %s: %w", chart.Name, err)
	}
	if err := v.wait(fmt.Sprintf("%s shown. Press Enter for the next chart", chart.Title)); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Close removes every chart written during the run
func (v *BrowserViewer) Close() error {
	return os.RemoveAll(v.dir)
}

func promptEnter(message string) error {
	var answer string
	return survey.AskOne(&survey.Input{Message: message}, &answer)
}

// LogViewer only logs chart metadata. It never blocks.
type LogViewer struct {
	logger *zap.Logger
}

// NewLogViewer creates a viewer for display mode "none"
func NewLogViewer(logger *zap.Logger) *LogViewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogViewer{logger: logger.Named("viewer")}
}

// Show logs the chart
func (v *LogViewer) Show(ctx context.Context, chart *render.Static) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.logger.Info("Chart rendered",
		zap.String("chart", chart.Name),
		zap.String("kind", string(chart.Kind)),
		zap.Int("points", chart.Points),
		zap.Bool("empty", chart.Empty))
	return nil
}

// Close is a no-op
func (v *LogViewer) Close() error {
	return nil
}
