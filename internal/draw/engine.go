package draw

import (
	"context"
	"sort"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/metrics"
	"github.com/tusklore/tuskbot/internal/rarity"
	"github.com/tusklore/tuskbot/internal/utils"
)

// boundary is one row of the cumulative probability table.
type boundary struct {
	rank int
	prob float64 // cumulative probability in (0,1]
}

// Engine performs rarity-weighted boar draws.
type Engine struct {
	table  *rarity.Table
	filter *rarity.Filter

	// Injectable for testing
	randFloat func() float64         // uniform in [0,1)
	randInt   func(min, max int) int // uniform inclusive
}

// NewEngine creates a draw engine using the process-wide random source.
func NewEngine(table *rarity.Table, filter *rarity.Filter) *Engine {
	return &Engine{
		table:     table,
		filter:    filter,
		randFloat: utils.RandomFloat,
		randInt:   utils.RandomInt,
	}
}

// WithRandom overrides the random sources. Tests use this to make draws
// deterministic.
func (e *Engine) WithRandom(randFloat func() float64, randInt func(min, max int) int) *Engine {
	e.randFloat = randFloat
	e.randInt = randInt
	return e
}

// Draw performs the base draw plus any extra-chance bonus draws and returns
// the drawn boar IDs in order. A draw whose selected tier has no eligible
// candidates yields domain.NoBoarID; duplicates across draws are expected.
func (e *Engine) Draw(ctx context.Context, weights map[int]float64, guild domain.GuildContext, extraChanceEnabled bool, extraChanceValue int) []string {
	log := logger.FromContext(ctx)

	table := e.cumulativeTable(weights)

	count := 1
	if extraChanceEnabled && extraChanceValue > 0 {
		guaranteed := extraChanceValue / 100
		count += guaranteed
		remainder := extraChanceValue % 100
		if remainder > 0 && e.randFloat() < float64(remainder)/100.0 {
			count++
		}
		if bonus := count - 1; bonus > 0 {
			metrics.BonusDraws.Add(float64(bonus))
		}
	}

	results := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, tierName := e.drawOne(table, guild)
		results = append(results, id)
		if id == domain.NoBoarID {
			metrics.EmptyDraws.Inc()
		} else {
			metrics.DrawsPerformed.WithLabelValues(tierName).Inc()
		}
		log.Debug("Boar drawn",
			"guild_id", guild.GuildID,
			"draw", i+1,
			"of", count,
			"tier", tierName,
			"boar_id", id)
	}
	return results
}

// cumulativeTable normalizes rank weights into cumulative probability
// boundaries. The final boundary acts as a catch-all for any sample not
// resolved earlier, absorbing floating-point rounding at the top.
func (e *Engine) cumulativeTable(weights map[int]float64) []boundary {
	type entry struct {
		rank   int
		weight float64
	}
	entries := make([]entry, 0, len(weights))
	var total float64
	for rank, w := range weights {
		if w <= 0 {
			continue
		}
		entries = append(entries, entry{rank: rank, weight: w})
		total += w
	}
	if total <= 0 {
		return nil
	}

	// Most common tier first, so boundaries ascend and a walk picks the
	// first boundary >= the sample.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].rank < entries[j].rank
	})

	table := make([]boundary, len(entries))
	var running float64
	for i, en := range entries {
		running += en.weight
		table[i] = boundary{rank: en.rank, prob: running / total}
	}
	return table
}

// drawOne samples one tier from the table and picks a candidate within it.
func (e *Engine) drawOne(table []boundary, guild domain.GuildContext) (string, string) {
	if len(table) == 0 {
		return domain.NoBoarID, ""
	}

	sample := e.randFloat()
	selected := table[len(table)-1] // catch-all guards float error at the top
	for _, b := range table[:len(table)-1] {
		if b.prob >= sample {
			selected = b
			break
		}
	}

	tier, ok := e.table.TierByRank(selected.rank)
	if !ok {
		return domain.NoBoarID, ""
	}

	candidates := e.filter.ValidCandidates(tier, guild)
	if len(candidates) == 0 {
		return domain.NoBoarID, tier.Name
	}
	return candidates[e.randInt(0, len(candidates)-1)], tier.Name
}
