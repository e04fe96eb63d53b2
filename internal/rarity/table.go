package rarity

import (
	"sort"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/metrics"
)

// Table holds the configured rarity tiers ordered by rank.
// Rank 1 is the most common (highest weight); rank 0 is reserved for the
// "unknown" fallback and is never assigned to a tier.
type Table struct {
	tiers []domain.RarityTier
}

// NewTable builds a rarity table from configuration. Tiers are sorted by
// descending weight (name as tiebreaker for determinism) and ranked 1-based
// in that order.
func NewTable(rarities map[string]config.RarityConfig) (*Table, error) {
	if len(rarities) == 0 {
		return nil, domain.ErrNoRarities
	}

	tiers := make([]domain.RarityTier, 0, len(rarities))
	for name, rc := range rarities {
		boars := make([]string, len(rc.Boars))
		copy(boars, rc.Boars)
		tiers = append(tiers, domain.RarityTier{
			Name:      name,
			Weight:    rc.Weight,
			FromDaily: rc.FromDaily,
			BoarIDs:   boars,
		})
	}

	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].Weight != tiers[j].Weight {
			return tiers[i].Weight > tiers[j].Weight
		}
		return tiers[i].Name < tiers[j].Name
	})
	for i := range tiers {
		tiers[i].Rank = i + 1
	}

	return &Table{tiers: tiers}, nil
}

// Tiers returns the tiers in rank order.
func (t *Table) Tiers() []domain.RarityTier {
	return t.tiers
}

// TierByRank returns the tier with the given 1-based rank.
func (t *Table) TierByRank(rank int) (domain.RarityTier, bool) {
	if rank < 1 || rank > len(t.tiers) {
		return domain.RarityTier{}, false
	}
	return t.tiers[rank-1], true
}

// LowestTier returns the lowest-weight tier. Used as the defensive fallback
// for unknown boar IDs.
func (t *Table) LowestTier() domain.RarityTier {
	return t.tiers[len(t.tiers)-1]
}

// FindRarity scans tiers in rank order for the boar ID. When no tier contains
// the ID it returns (0, lowest tier, ErrItemNotInRarity): the fallback keeps
// callers alive through configuration drift, but rank 0 is never a valid draw
// result and the error must be logged.
func (t *Table) FindRarity(boarID string) (int, domain.RarityTier, error) {
	for _, tier := range t.tiers {
		for _, id := range tier.BoarIDs {
			if id == boarID {
				return tier.Rank, tier, nil
			}
		}
	}
	metrics.RarityFallbacks.Inc()
	return 0, t.LowestTier(), domain.ErrItemNotInRarity
}

// BaseWeights returns rank -> weight for the base draw pool. Tiers outside
// the daily pool keep their entry with weight 0 so they exist but are
// undrawable.
func (t *Table) BaseWeights() map[int]float64 {
	weights := make(map[int]float64, len(t.tiers))
	for _, tier := range t.tiers {
		w := tier.Weight
		if !tier.FromDaily {
			w = 0
		}
		weights[tier.Rank] = w
	}
	return weights
}
