package draw_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/draw"
	"github.com/tusklore/tuskbot/internal/rarity"
)

// fixedFloats returns a randFloat that replays values in order, repeating the
// last one when exhausted.
func fixedFloats(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func firstInt(min, max int) int { return min }

func newTestEngine(t *testing.T) (*draw.Engine, *rarity.Table) {
	t.Helper()
	table, err := rarity.NewTable(map[string]config.RarityConfig{
		"common": {Weight: 70, FromDaily: true, Boars: []string{"mud", "forest"}},
		"rare":   {Weight: 30, FromDaily: true, Boars: []string{"golden"}},
	})
	require.NoError(t, err)

	filter := rarity.NewFilter(map[string]domain.Boar{
		"mud":    {ID: "mud"},
		"forest": {ID: "forest"},
		"golden": {ID: "golden"},
	})
	return draw.NewEngine(table, filter), table
}

func TestDraw_SingleResultWithoutExtraChance(t *testing.T) {
	engine, table := newTestEngine(t)
	engine.WithRandom(fixedFloats(0.5), firstInt)

	got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, false, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "mud", got[0])
}

func TestDraw_HighSampleSelectsRareTier(t *testing.T) {
	// Boundaries: common=0.7, rare=1.0. A sample of 0.9 lands in rare.
	engine, table := newTestEngine(t)
	engine.WithRandom(fixedFloats(0.9), firstInt)

	got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, false, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "golden", got[0])
}

func TestDraw_BoundarySampleGoesToFirstTierReached(t *testing.T) {
	engine, table := newTestEngine(t)
	engine.WithRandom(fixedFloats(0.7), firstInt)

	got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, false, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "mud", got[0], "boundary ties resolve to the earlier tier")
}

func TestDraw_ExtraChanceGuaranteedDraws(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		bonusRoll float64
		wantDraws int
	}{
		{name: "250 with failed bonus roll", value: 250, bonusRoll: 0.9, wantDraws: 3},
		{name: "250 with passing bonus roll", value: 250, bonusRoll: 0.1, wantDraws: 4},
		{name: "100 is one deterministic bonus", value: 100, bonusRoll: 0.9, wantDraws: 2},
		{name: "50 failing roll", value: 50, bonusRoll: 0.6, wantDraws: 1},
		{name: "50 passing roll", value: 50, bonusRoll: 0.4, wantDraws: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, table := newTestEngine(t)
			// First value feeds the bonus roll, the rest feed the draws.
			engine.WithRandom(fixedFloats(tt.bonusRoll, 0.5), firstInt)

			got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, true, tt.value)
			assert.Len(t, got, tt.wantDraws)
		})
	}
}

func TestDraw_EmptyCandidatesYieldSentinel(t *testing.T) {
	table, err := rarity.NewTable(map[string]config.RarityConfig{
		"common": {Weight: 100, FromDaily: true, Boars: []string{"skyb"}},
	})
	require.NoError(t, err)
	filter := rarity.NewFilter(map[string]domain.Boar{
		"skyb": {ID: "skyb", IsSB: true},
	})
	engine := draw.NewEngine(table, filter).WithRandom(fixedFloats(0.5), firstInt)

	got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, false, 0)
	require.Len(t, got, 1)
	assert.Equal(t, domain.NoBoarID, got[0])
}

func TestDraw_NoPositiveWeights(t *testing.T) {
	table, err := rarity.NewTable(map[string]config.RarityConfig{
		"hidden": {Weight: 10, FromDaily: false, Boars: []string{"spirit"}},
	})
	require.NoError(t, err)
	filter := rarity.NewFilter(map[string]domain.Boar{"spirit": {ID: "spirit"}})
	engine := draw.NewEngine(table, filter).WithRandom(fixedFloats(0.5), firstInt)

	got := engine.Draw(context.Background(), table.BaseWeights(), domain.GuildContext{GuildID: "g"}, false, 0)
	require.Len(t, got, 1)
	assert.Equal(t, domain.NoBoarID, got[0])
}
