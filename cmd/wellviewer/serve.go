package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-well-viewer/internal/api"
	"go-well-viewer/internal/api/handler"
	"go-well-viewer/internal/config"
	"go-well-viewer/internal/metrics"
	"go-well-viewer/internal/pkg/logger"
	"go-well-viewer/internal/store"
	"go-well-viewer/pkg/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the HTTP server hosting the upload page and the scene API.

The port defaults to 8050 and can be overridden with the PORT or SERVER_PORT
environment variables, or a config.yaml in the working directory.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	// Init build history
	if cfg.Store.Enabled() {
		if err := store.InitDB(cfg.Store.Path); err != nil {
			return fmt.Errorf("failed to open build history %s: %w", cfg.Store.Path, err)
		}
		defer store.Close()
		logger.Info("build history enabled", zap.String("path", cfg.Store.Path))
	}

	handler.Configure(handler.Options{
		MaxUploadBytes: cfg.Upload.MaxBytes,
		HistoryLimit:   cfg.History.Limit,
	})

	r := router.New(
		router.WithLogger(logger.Log),
		router.WithObserver(func(method, _ string, status int, _ time.Duration) {
			metrics.RecordRequest(method, status)
		}),
	)
	api.RegisterRoutes(r)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return r.Serve(ctx, cfg.Server.Addr())
}
