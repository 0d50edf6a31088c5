package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/quantfeed/stock-data/internal/alphavantage"
	"github.com/quantfeed/stock-data/internal/config"
	"github.com/quantfeed/stock-data/internal/database"
	"github.com/quantfeed/stock-data/internal/ingest"
	"github.com/quantfeed/stock-data/internal/store"
	"github.com/quantfeed/stock-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/stockdata.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingestion",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"symbols", cfg.Provider.Symbols,
		"window_days", cfg.Provider.WindowDays,
	)

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	observations := store.New(pool, logger)
	if err := observations.EnsureSchema(ctx, cfg.Provider.MaxSymbolLen); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	client := alphavantage.NewClient(
		cfg.Provider.BaseURL,
		cfg.Provider.APIKey,
		alphavantage.WithTimeout(cfg.Provider.Timeout),
		alphavantage.WithLogger(logger),
	)

	orchestrator := ingest.New(ingest.Config{
		Symbols:      cfg.Provider.Symbols,
		WindowDays:   cfg.Provider.WindowDays,
		Concurrency:  cfg.Ingest.Concurrency,
		MaxSymbolLen: cfg.Provider.MaxSymbolLen,
	}, client, observations, logger)

	// Partial success is fine; per-unit failures are already in the logs.
	orchestrator.Run(ctx)
}
