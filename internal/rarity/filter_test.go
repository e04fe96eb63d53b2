package rarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/rarity"
)

func TestValidCandidates(t *testing.T) {
	boars := map[string]domain.Boar{
		"mud":    {ID: "mud"},
		"cursed": {ID: "cursed", Blacklisted: true},
		"skyb":   {ID: "skyb", IsSB: true},
	}
	filter := rarity.NewFilter(boars)
	tier := domain.RarityTier{
		Name:    "common",
		Rank:    1,
		BoarIDs: []string{"mud", "cursed", "skyb"},
	}

	tests := []struct {
		name  string
		guild domain.GuildContext
		want  []string
	}{
		{
			name:  "regular guild excludes blacklisted and SB-only",
			guild: domain.GuildContext{GuildID: "g1"},
			want:  []string{"mud"},
		},
		{
			name:  "SB guild includes SB-only boars",
			guild: domain.GuildContext{GuildID: "g2", IsSBServer: true},
			want:  []string{"mud", "skyb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.ValidCandidates(tier, tt.guild)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidCandidates_AllExcludedIsValid(t *testing.T) {
	filter := rarity.NewFilter(map[string]domain.Boar{
		"cursed": {ID: "cursed", Blacklisted: true},
	})
	tier := domain.RarityTier{Name: "common", Rank: 1, BoarIDs: []string{"cursed"}}

	got := filter.ValidCandidates(tier, domain.GuildContext{GuildID: "g1"})
	assert.Empty(t, got, "an empty candidate set is an expected outcome, not an error")
}
