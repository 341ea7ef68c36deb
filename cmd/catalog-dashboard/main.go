package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/cleaner"
	"github.com/David-Botos/catalog-eda/pkg/config"
	"github.com/David-Botos/catalog-eda/pkg/connector"
	"github.com/David-Botos/catalog-eda/pkg/dashboard"
)

var (
	envFile    string
	listenAddr string
	version    = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "catalog-dashboard",
	Short: "Serve the interactive catalog dashboard",
	Long: `catalog-dashboard loads the titles file once and serves a local page with
type, release-year and country controls. Every control change recomputes
the metrics, charts and raw table for the new selection.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "config", "c", ".env", "path to env file")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides EDA_LISTEN_ADDR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return err
	}
	if listenAddr != "" {
		cfg.Dashboard.ListenAddr = listenAddr
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return err
	}
	defer logger.Sync()

	hlog.SetLogger(dashboard.NewHertzZapAdapter(logger))

	dc, err := cleaner.NewDataCleaner(cleaner.Policy{Sentinel: cfg.Sentinel}, logger)
	if err != nil {
		logger.Error("Failed to create cleaner", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := connector.NewCSVSource(cfg.DataPath, logger, connector.WithMetadata(dc.Metadata()))
	c, _, err := catalog.Load(ctx, source, dc, logger)
	if err != nil {
		logger.Error("Failed to load catalog", zap.Error(err))
		return err
	}

	srv := dashboard.NewServer(c, cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server run failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
