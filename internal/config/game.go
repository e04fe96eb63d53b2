package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/tusklore/tuskbot/internal/domain"
)

// RarityConfig is one rarity tier as configured.
type RarityConfig struct {
	Weight    float64  `json:"weight" validate:"gt=0"`
	FromDaily bool     `json:"from_daily"`
	Boars     []string `json:"boars" validate:"required,min=1,unique"`
}

// PowerupConfig describes one purchasable powerup.
type PowerupConfig struct {
	DisplayName string `json:"display_name" validate:"required"`
	// ExtraChancePct is the bonus-draw percentage granted per owned unit;
	// 0 for powerups that do not affect draw count.
	ExtraChancePct int `json:"extra_chance_pct" validate:"gte=0"`
}

// GameConfig is the static game configuration. It is parsed and validated
// once at load time; the core components consume it as-is and never mutate it.
type GameConfig struct {
	Rarities map[string]RarityConfig  `json:"rarities" validate:"required,min=1,dive"`
	Boars    map[string]domain.Boar   `json:"boars" validate:"required,min=1"`
	Powerups map[string]PowerupConfig `json:"powerups" validate:"dive"`
	Boards   []string                 `json:"boards" validate:"required,min=1,unique"`
	QuestIDs []string                 `json:"quest_ids" validate:"required,min=1,unique"`

	NumActiveQuests    int   `json:"num_active_quests" validate:"gt=0"`
	DayLengthMs        int64 `json:"day_length_ms" validate:"gt=0"`
	MultiplierBoostCap int   `json:"multiplier_boost_cap" validate:"gte=0"`
}

// LoadGameConfig reads and validates the game configuration file.
// Validation failures are fatal at load time so the core never has to
// re-check configuration shape at point of use.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks structural constraints (via validator tags) and the
// cross-references the tags cannot express.
func (c *GameConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	// Every boar referenced by a tier must be defined, and no boar may
	// appear in more than one tier.
	seen := make(map[string]string, len(c.Boars))
	for name, tier := range c.Rarities {
		for _, id := range tier.Boars {
			if _, ok := c.Boars[id]; !ok {
				return fmt.Errorf("%w: tier %q references undefined boar %q", domain.ErrInvalidConfig, name, id)
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: boar %q appears in tiers %q and %q", domain.ErrInvalidConfig, id, prev, name)
			}
			seen[id] = name
		}
	}

	if c.NumActiveQuests > len(c.QuestIDs) {
		return fmt.Errorf("%w: num_active_quests %d exceeds quest pool size %d",
			domain.ErrInvalidConfig, c.NumActiveQuests, len(c.QuestIDs))
	}

	return nil
}

// BoarFlags returns the definition for a boar ID, zero-valued if unknown.
func (c *GameConfig) BoarFlags(id string) domain.Boar {
	return c.Boars[id]
}
