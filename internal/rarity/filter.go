package rarity

import (
	"github.com/tusklore/tuskbot/internal/domain"
)

// Filter decides which members of a tier are drawable for a given guild.
type Filter struct {
	boars map[string]domain.Boar
}

// NewFilter creates a filter over the configured boar definitions.
func NewFilter(boars map[string]domain.Boar) *Filter {
	return &Filter{boars: boars}
}

// ValidCandidates returns the tier's boar IDs excluding blacklisted boars and
// SB-only boars on guilds that are not SB servers. An empty result is a valid,
// expected outcome, not an error.
func (f *Filter) ValidCandidates(tier domain.RarityTier, guild domain.GuildContext) []string {
	candidates := make([]string, 0, len(tier.BoarIDs))
	for _, id := range tier.BoarIDs {
		def := f.boars[id]
		if def.Blacklisted {
			continue
		}
		if def.IsSB && !guild.IsSBServer {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}
