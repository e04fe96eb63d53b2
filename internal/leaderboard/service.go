package leaderboard

import (
	"context"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/store"
)

// Service recomputes a user's entries across every leaderboard metric.
//
// Remove clears a dangling topUser pointer without recomputing it from the
// remaining entries; read paths treat an unset topUser as "recompute on
// display". TODO: recompute topUser lazily on board reads so the pointer
// never stays unset after a removal.
type Service struct {
	store *store.Store
	cfg   *config.GameConfig
}

// NewService creates a leaderboard service.
func NewService(st *store.Store, cfg *config.GameConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

// Update recomputes the user's value for every metric and upserts or removes
// their entry accordingly. The whole dataset is persisted once, after all
// metrics are updated; a partial update is never observably saved.
func (s *Service) Update(ctx context.Context, u *domain.User) error {
	log := logger.FromContext(ctx)

	return s.store.UpdateBoards(ctx, func(boards domain.BoardsData) error {
		for metric, board := range boards {
			value := s.metricValue(metric, u)
			if value > 0 {
				upsert(board, metric, u.ID, u.Username, value)
			} else {
				removeEntry(board, u.ID)
			}
		}
		log.Debug("Leaderboards updated", "user_id", u.ID)
		return nil
	})
}

// Remove deletes the user's entry from every metric and clears topUser on any
// metric still pointing at them. The top holder is intentionally left unset
// rather than recomputed here.
func (s *Service) Remove(ctx context.Context, userID string) error {
	return s.store.UpdateBoards(ctx, func(boards domain.BoardsData) error {
		for _, board := range boards {
			removeEntry(board, userID)
		}
		return nil
	})
}

// metricValue computes the user's current value for one metric. Unknown
// metric names yield 0, which removes any stale entry.
func (s *Service) metricValue(metric string, u *domain.User) int64 {
	switch metric {
	case domain.MetricScore:
		return u.Score
	case domain.MetricTotal:
		return u.TotalBoars()
	case domain.MetricUniques:
		return s.countUniques(u, false)
	case domain.MetricUniquesSpecial:
		return s.countUniques(u, true)
	case domain.MetricStreak:
		return int64(u.Streak)
	case domain.MetricAttempts:
		return int64(u.Attempts)
	case domain.MetricTopAttempts:
		return int64(u.TopAttempts)
	case domain.MetricGiftsUsed:
		return int64(u.GiftsUsed)
	case domain.MetricMultiplier:
		return int64(EffectiveMultiplier(u.Multiplier, u.BoostStacks, s.cfg.MultiplierBoostCap))
	case domain.MetricFastest:
		return u.FastestTime
	default:
		return 0
	}
}

// countUniques counts distinct owned boars; specialOnly restricts the count
// to SB-flagged boars.
func (s *Service) countUniques(u *domain.User, specialOnly bool) int64 {
	var n int64
	for id, count := range u.Boars {
		if count <= 0 {
			continue
		}
		if specialOnly && !s.cfg.Boars[id].IsSB {
			continue
		}
		n++
	}
	return n
}

// EffectiveMultiplier inflates the base multiplier by the active boost
// stacks. Each stack adds 5% of the current value rounded up, capped per
// stack; stacks compound on the post-previous-stack value, so order matters.
// A cap of 0 or less means uncapped.
func EffectiveMultiplier(base, stacks, capPerStack int) int {
	cur := base
	for i := 0; i < stacks; i++ {
		add := (cur*5 + 99) / 100 // ceil(cur * 0.05)
		if capPerStack > 0 && add > capPerStack {
			add = capPerStack
		}
		cur += add
	}
	return cur
}

// upsert writes the entry and maintains the top-holder pointer. The fastest
// metric ranks ascending; everything else ranks descending.
func upsert(board *domain.BoardData, metric, userID, username string, value int64) {
	if board.UserData == nil {
		board.UserData = make(map[string]*domain.BoardEntry)
	}
	board.UserData[userID] = &domain.BoardEntry{Username: username, Value: value}

	top, ok := board.UserData[board.TopUser]
	if board.TopUser == "" || !ok {
		board.TopUser = userID
		return
	}
	if metric == domain.MetricFastest {
		if value < top.Value {
			board.TopUser = userID
		}
	} else if value > top.Value {
		board.TopUser = userID
	}
}

// removeEntry drops the user's entry and clears a dangling topUser pointer.
func removeEntry(board *domain.BoardData, userID string) {
	delete(board.UserData, userID)
	if board.TopUser == userID {
		board.TopUser = ""
	}
}
