package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogDir       string
	APIKey       string // API key for HTTP endpoint authentication
	DataDir      string // directory for global dataset documents
	GuildDataDir string // directory for per-guild documents
	GameConfig   string // path to the game configuration JSON
	DiscordToken string
	DiscordAppID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogDir:       getEnv("LOG_DIR", "logs"),
		APIKey:       getEnv("API_KEY", ""),
		DataDir:      getEnv("DATA_DIR", "data/global"),
		GuildDataDir: getEnv("GUILD_DATA_DIR", "data/guilds"),
		GameConfig:   getEnv("GAME_CONFIG", "configs/game.json"),
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
