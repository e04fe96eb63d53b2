package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tusklore/tuskbot/internal/boar"
	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/draw"
	"github.com/tusklore/tuskbot/internal/leaderboard"
	"github.com/tusklore/tuskbot/internal/rarity"
	"github.com/tusklore/tuskbot/internal/server"
	"github.com/tusklore/tuskbot/internal/store"
	"github.com/tusklore/tuskbot/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := setupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	game, err := config.LoadGameConfig(cfg.GameConfig)
	if err != nil {
		slog.Error("Game configuration failed", "error", err)
		os.Exit(1)
	}

	locks := concurrency.NewLockManager()

	users, err := user.NewRepository(cfg.DataDir+"/users", locks)
	if err != nil {
		slog.Error("User repository setup failed", "error", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.DataDir, game, locks, users)
	if err != nil {
		slog.Error("Store setup failed", "error", err)
		os.Exit(1)
	}

	guilds, err := store.NewGuildStore(cfg.GuildDataDir, locks)
	if err != nil {
		slog.Error("Guild store setup failed", "error", err)
		os.Exit(1)
	}

	table, err := rarity.NewTable(game.Rarities)
	if err != nil {
		slog.Error("Rarity table setup failed", "error", err)
		os.Exit(1)
	}
	filter := rarity.NewFilter(game.Boars)
	engine := draw.NewEngine(table, filter)

	boards := leaderboard.NewService(st, game)
	boarService := boar.NewService(game, table, engine, st, users, guilds, boards)

	ctx := context.Background()
	if err := st.ReconcileAll(ctx); err != nil {
		slog.Error("Dataset reconciliation failed", "error", err)
		os.Exit(1)
	}

	// The release-metadata cache is only created when a dependency channel
	// is configured; otherwise creation is skipped silently.
	channelID := os.Getenv("GITHUB_CHANNEL_ID")
	if _, err := st.EnsureGitHubData(ctx, func() bool { return channelID != "" }); err != nil {
		slog.Warn("Release metadata cache unavailable", "error", err)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, boarService, st)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	slog.Info("Shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
