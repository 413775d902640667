package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suredoor/config"
	"suredoor/config/setup"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(config.AppConfig, slog.Default())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	// running the binary without a subcommand serves
	rootCmd.RunE = serveCmd.RunE
}

func serve(cfg *config.Config, logger *slog.Logger) error {
	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := setup.InitApp(ctx, db, cfg, logger)
	if err != nil {
		db.Close()
		return err
	}

	fiberApp := setup.NewFiberApp(cfg, application, logger)
	setup.ApplyMiddleware(fiberApp, cfg, logger)
	setup.RegisterRoutes(fiberApp, application, cfg)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env, "storage", cfg.StorageDriver)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- fiberApp.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErr:
		logger.Error("server failed", "error", err)
	case <-quit:
		logger.Info("shutting down server gracefully")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if shutdownErr := fiberApp.ShutdownWithContext(shutdownCtx); shutdownErr != nil {
		logger.Error("server forced to shutdown", "error", shutdownErr)
	}

	cancel()
	setup.Shutdown(application, db, logger)
	logger.Info("server stopped")
	return err
}
