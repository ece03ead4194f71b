package main

import (
	"context"
	"log/slog"
	"os"

	"littlesearch/config"
	"littlesearch/internal/app"
	"littlesearch/internal/lib/logger/sl"
	"littlesearch/internal/services/cui"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	ctx := context.Background()

	log := setupLogger(cfg.Env)

	log.Info("littlesearch", "env", cfg.Env)

	application := app.New(log, cfg)

	log.Info("Database initialised")

	if err := application.BuildIndex(ctx); err != nil {
		log.Error("Failed to build index", "error", sl.Err(err))
		os.Exit(1)
	}

	ui := cui.New(ctx, log, application.Engine, application.StorageApp.Storage(), cfg.Search.TopK)
	defer ui.Close()

	if err := ui.Start(); err != nil {
		log.Error("Failed to run GUI:", "error", sl.Err(err))
	}

	if err := application.StorageApp.Stop(); err != nil {
		log.Error("Failed to close database", "error", sl.Err(err))
	}

	log.Info("Gracefully stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
