package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
)

func validGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Rarities: map[string]config.RarityConfig{
			"common": {Weight: 70, FromDaily: true, Boars: []string{"mud"}},
			"rare":   {Weight: 30, FromDaily: true, Boars: []string{"golden"}},
		},
		Boars: map[string]domain.Boar{
			"mud":    {ID: "mud"},
			"golden": {ID: "golden"},
		},
		Powerups: map[string]config.PowerupConfig{
			"extra_chance": {DisplayName: "Extra Chance", ExtraChancePct: 50},
		},
		Boards:             []string{domain.MetricScore, domain.MetricTotal},
		QuestIDs:           []string{"q1", "q2", "q3"},
		NumActiveQuests:    2,
		DayLengthMs:        24 * 60 * 60 * 1000,
		MultiplierBoostCap: 25,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.GameConfig)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *config.GameConfig) {},
		},
		{
			name: "no rarities",
			mutate: func(c *config.GameConfig) {
				c.Rarities = nil
			},
			wantErr: true,
		},
		{
			name: "non-positive weight",
			mutate: func(c *config.GameConfig) {
				tier := c.Rarities["common"]
				tier.Weight = 0
				c.Rarities["common"] = tier
			},
			wantErr: true,
		},
		{
			name: "tier with no boars",
			mutate: func(c *config.GameConfig) {
				tier := c.Rarities["common"]
				tier.Boars = nil
				c.Rarities["common"] = tier
			},
			wantErr: true,
		},
		{
			name: "tier references undefined boar",
			mutate: func(c *config.GameConfig) {
				tier := c.Rarities["rare"]
				tier.Boars = append(tier.Boars, "phantom")
				c.Rarities["rare"] = tier
			},
			wantErr: true,
		},
		{
			name: "boar in two tiers",
			mutate: func(c *config.GameConfig) {
				tier := c.Rarities["rare"]
				tier.Boars = append(tier.Boars, "mud")
				c.Rarities["rare"] = tier
			},
			wantErr: true,
		},
		{
			name: "powerup without display name",
			mutate: func(c *config.GameConfig) {
				c.Powerups["broken"] = config.PowerupConfig{}
			},
			wantErr: true,
		},
		{
			name: "active quests exceed pool",
			mutate: func(c *config.GameConfig) {
				c.NumActiveQuests = 10
			},
			wantErr: true,
		},
		{
			name: "duplicate board metric",
			mutate: func(c *config.GameConfig) {
				c.Boards = []string{domain.MetricScore, domain.MetricScore}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validGameConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	data := `{
		"rarities": {
			"common": {"weight": 70, "from_daily": true, "boars": ["mud"]},
			"rare": {"weight": 30, "from_daily": true, "boars": ["golden"]}
		},
		"boars": {
			"mud": {"id": "mud"},
			"golden": {"id": "golden"}
		},
		"boards": ["score", "total"],
		"quest_ids": ["q1", "q2"],
		"num_active_quests": 2,
		"day_length_ms": 86400000,
		"multiplier_boost_cap": 25
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.LoadGameConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Rarities, 2)
	assert.Equal(t, int64(86400000), cfg.DayLengthMs)
}

func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, err := config.LoadGameConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadGameConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := config.LoadGameConfig(path)
	assert.Error(t, err)
}
