package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/export9/export9-server/internal/api"
	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/factory"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	exportDataPath := flag.String("export-data", "", "path to an export data snapshot file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	app, err := factory.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loadExportData(app, *exportDataPath, logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		Gateway:       app.Gateway,
		RatingService: app.RatingService,
		Storage:       app.Storage,
	})
	server := api.NewServer(router, cfg.Server, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// loadExportData fills the export catalog from a snapshot file, falling
// back to generated values so the game can always run
func loadExportData(app *factory.App, path string, logger *slog.Logger) {
	if path != "" {
		err := app.ExportsService.LoadSnapshotFile(path)
		if err == nil {
			logger.Info("loaded export data snapshot", slog.String("path", path))
			return
		}
		logger.Warn("could not load export data snapshot, generating fallback values",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
	app.ExportsService.GenerateFallback()
	logger.Info("generated fallback export data")
}

// logLevel maps the configured level name to a slog level
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
