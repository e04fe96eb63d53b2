package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tusklore/tuskbot/internal/boar"
	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/discord"
	"github.com/tusklore/tuskbot/internal/draw"
	"github.com/tusklore/tuskbot/internal/leaderboard"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/rarity"
	"github.com/tusklore/tuskbot/internal/store"
	"github.com/tusklore/tuskbot/internal/user"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logger.ParseLevel(os.Getenv("LOG_LEVEL")),
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.DiscordToken == "" || cfg.DiscordAppID == "" {
		slog.Error("DISCORD_TOKEN and DISCORD_APP_ID must be set")
		os.Exit(1)
	}

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
	engine := draw.NewEngine(table, rarity.NewFilter(game.Boars))
	boards := leaderboard.NewService(st, game)
	boarService := boar.NewService(game, table, engine, st, users, guilds, boards)

	if err := st.ReconcileAll(context.Background()); err != nil {
		slog.Error("Dataset reconciliation failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	}, boarService, st, guilds)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	bot.Registry.Register(discord.DailyCommand())
	bot.Registry.Register(discord.TopCommand())
	bot.Registry.Register(discord.MarketCommand())
	bot.Registry.Register(discord.SetupCommand())

	if err := bot.RegisterCommands(); err != nil {
		slog.Error("Failed to register commands", "error", err)
		os.Exit(1)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}
