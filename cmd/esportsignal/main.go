package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/esportsignal/internal/adapters/opendota"
	"github.com/alejandrodnm/esportsignal/internal/adapters/polymarket"
	"github.com/alejandrodnm/esportsignal/internal/adapters/storage"
	"github.com/alejandrodnm/esportsignal/internal/config"
	"github.com/alejandrodnm/esportsignal/internal/matching"
	"github.com/alejandrodnm/esportsignal/internal/supervisor"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.Log)

	slog.Info("esportsignal starting",
		"polymarket_api", cfg.PolymarketAPIURL,
		"scan_interval", cfg.PolymarketScanInterval,
		"poll_interval", cfg.LiveMatchPollInterval,
		"database", cfg.DatabasePath,
	)

	aliases, err := matching.LoadAliases(cfg.TeamAliasesPath)
	if err != nil {
		slog.Error("failed to load team aliases", "err", err, "path", cfg.TeamAliasesPath)
		os.Exit(1)
	}
	resolver := matching.NewTeamResolver(aliases)

	marketAdapter := polymarket.NewAdapter(cfg.PolymarketAPIURL)
	liveAdapter := opendota.NewAdapter("")

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer store.Close()

	sup := supervisor.New(cfg, marketAdapter, liveAdapter, store, resolver)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sup.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("esportsignal exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("esportsignal stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
