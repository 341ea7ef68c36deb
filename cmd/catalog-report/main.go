package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/config"
	"github.com/David-Botos/catalog-eda/pkg/report"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "catalog-report",
	Short: "Print catalog statistics and show the fixed sequence of charts",
	Long: `catalog-report loads the titles file, prints descriptive statistics and
displays eight charts one after another, waiting for Enter between them.
Settings come from EDA_* environment variables or a .env file.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runReport,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return err
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("Catalog report starting",
		zap.String("version", version),
		zap.String("data_path", cfg.DataPath),
		zap.String("display", cfg.Display.Mode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer, err := report.NewViewer(cfg, logger)
	if err != nil {
		logger.Error("Failed to create viewer", zap.Error(err))
		return err
	}
	defer func() {
		if err := viewer.Close(); err != nil {
			logger.Warn("Failed to clean up charts", zap.Error(err))
		}
	}()

	if err := report.NewRunner(cfg, viewer, cmd.OutOrStdout(), logger).Run(ctx); err != nil {
		logger.Error("Report failed", zap.Error(err))
		return err
	}
	return nil
}
