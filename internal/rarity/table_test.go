package rarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/rarity"
)

func testRarities() map[string]config.RarityConfig {
	return map[string]config.RarityConfig{
		"common": {Weight: 70, FromDaily: true, Boars: []string{"mud", "forest"}},
		"rare":   {Weight: 25, FromDaily: true, Boars: []string{"golden"}},
		"mythic": {Weight: 5, FromDaily: false, Boars: []string{"spirit"}},
	}
}

func TestNewTable_RanksByDescendingWeight(t *testing.T) {
	table, err := rarity.NewTable(testRarities())
	require.NoError(t, err)

	tiers := table.Tiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, "common", tiers[0].Name)
	assert.Equal(t, 1, tiers[0].Rank)
	assert.Equal(t, "rare", tiers[1].Name)
	assert.Equal(t, 2, tiers[1].Rank)
	assert.Equal(t, "mythic", tiers[2].Name)
	assert.Equal(t, 3, tiers[2].Rank)
}

func TestNewTable_Empty(t *testing.T) {
	_, err := rarity.NewTable(nil)
	assert.ErrorIs(t, err, domain.ErrNoRarities)
}

func TestFindRarity(t *testing.T) {
	table, err := rarity.NewTable(testRarities())
	require.NoError(t, err)

	rank, tier, err := table.FindRarity("golden")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.Equal(t, "rare", tier.Name)
}

func TestFindRarity_UnknownFallsBackToLowestTier(t *testing.T) {
	table, err := rarity.NewTable(testRarities())
	require.NoError(t, err)

	rank, tier, err := table.FindRarity("nonexistent")
	assert.ErrorIs(t, err, domain.ErrItemNotInRarity)
	assert.Equal(t, 0, rank)
	assert.Equal(t, "mythic", tier.Name)
}

func TestBaseWeights_ZeroesNonDailyTiers(t *testing.T) {
	table, err := rarity.NewTable(testRarities())
	require.NoError(t, err)

	weights := table.BaseWeights()
	require.Len(t, weights, 3)
	assert.Equal(t, 70.0, weights[1])
	assert.Equal(t, 25.0, weights[2])
	assert.Equal(t, 0.0, weights[3], "non-daily tier must exist but be undrawable")
}

func TestNewTable_EqualWeightsBreakTiesByName(t *testing.T) {
	table, err := rarity.NewTable(map[string]config.RarityConfig{
		"beta":  {Weight: 50, FromDaily: true, Boars: []string{"b"}},
		"alpha": {Weight: 50, FromDaily: true, Boars: []string{"a"}},
	})
	require.NoError(t, err)

	tiers := table.Tiers()
	assert.Equal(t, "alpha", tiers[0].Name)
	assert.Equal(t, "beta", tiers[1].Name)
}
