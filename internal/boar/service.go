package boar

import (
	"context"
	"fmt"

	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/draw"
	"github.com/tusklore/tuskbot/internal/leaderboard"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/rarity"
	"github.com/tusklore/tuskbot/internal/store"
	"github.com/tusklore/tuskbot/internal/user"
)

// DailyResult is the outcome of one eligible action.
type DailyResult struct {
	UserID  string   `json:"user_id"`
	BoarIDs []string `json:"boar_ids"` // may contain empty sentinels for dry draws
	Streak  int      `json:"streak"`
}

// Service orchestrates the daily draw flow: banned check, guild eligibility,
// extra-chance resolution, the draw itself, profile and catalogue mutation,
// and leaderboard aggregation.
type Service struct {
	cfg    *config.GameConfig
	table  *rarity.Table
	engine *draw.Engine
	store  *store.Store
	users  *user.Repository
	guilds *store.GuildStore
	boards *leaderboard.Service
}

// NewService creates a boar service.
func NewService(
	cfg *config.GameConfig,
	table *rarity.Table,
	engine *draw.Engine,
	st *store.Store,
	users *user.Repository,
	guilds *store.GuildStore,
	boards *leaderboard.Service,
) *Service {
	return &Service{
		cfg:    cfg,
		table:  table,
		engine: engine,
		store:  st,
		users:  users,
		guilds: guilds,
		boards: boards,
	}
}

// Daily performs one eligible action for the user in the given guild and
// returns the drawn boar IDs.
func (s *Service) Daily(ctx context.Context, userID, username, guildID string) (*DailyResult, error) {
	log := logger.FromContext(ctx)

	banned, err := s.store.LoadBannedUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load banned users: %w", err)
	}
	if _, ok := banned[userID]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserBanned, userID)
	}

	guild, err := s.guilds.Get(ctx, guildID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild %s: %w", guildID, err)
	}

	u, err := s.users.GetOrCreate(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	extra := s.extraChanceValue(u)
	boarIDs := s.engine.Draw(ctx, s.table.BaseWeights(), guild.Context(), extra > 0, extra)

	// The profile mutation runs inside one locked load-modify-save cycle so
	// concurrent claims for the same user never overwrite each other.
	var updated domain.User
	err = s.users.Update(ctx, userID, func(u *domain.User) error {
		u.Username = username
		u.Attempts++
		u.Streak++
		for _, id := range boarIDs {
			if id == domain.NoBoarID {
				continue
			}
			u.AddBoar(id)
			if s.isTopTier(ctx, id) {
				u.TopAttempts++
			}
		}
		updated = *u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record draw for user %s: %w", userID, err)
	}

	if err := s.recordObtained(ctx, userID, boarIDs); err != nil {
		return nil, err
	}

	if err := s.boards.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update leaderboards: %w", err)
	}

	log.Info("Daily draw completed",
		"user_id", userID,
		"guild_id", guildID,
		"draws", len(boarIDs),
		"extra_chance", extra)

	return &DailyResult{UserID: userID, BoarIDs: boarIDs, Streak: updated.Streak}, nil
}

// extraChanceValue sums the bonus-draw percentage granted by the user's
// extra-chance powerups.
func (s *Service) extraChanceValue(u *domain.User) int {
	var total int
	for id, pc := range s.cfg.Powerups {
		if pc.ExtraChancePct <= 0 {
			continue
		}
		total += pc.ExtraChancePct * u.Powerups[id]
	}
	return total
}

// isTopTier reports whether the boar belongs to the rarest configured tier.
// The rank-0 fallback is logged so configuration drift stays visible.
func (s *Service) isTopTier(ctx context.Context, boarID string) bool {
	rank, _, err := s.table.FindRarity(boarID)
	if err != nil {
		logger.FromContext(ctx).Error("Drawn boar missing from rarity configuration",
			"boar_id", boarID, "error", err)
		return false
	}
	return rank == len(s.table.Tiers())
}

// recordObtained updates the global catalogue for each obtained boar: edition
// numbering, existence count, and first-owner tracking.
func (s *Service) recordObtained(ctx context.Context, userID string, boarIDs []string) error {
	obtained := make([]string, 0, len(boarIDs))
	for _, id := range boarIDs {
		if id != domain.NoBoarID {
			obtained = append(obtained, id)
		}
	}
	if len(obtained) == 0 {
		return nil
	}

	return s.store.UpdateBoars(ctx, func(data domain.BoarsData) error {
		for _, id := range obtained {
			info, ok := data[id]
			if !ok {
				info = &domain.BoarInfo{}
				data[id] = info
			}
			info.NumExists++
			if info.CurEdition == 0 {
				info.FirstObtained = userID
			}
			info.CurEdition++
		}
		return nil
	})
}
