package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/metrics"
)

// ReconcileAll synchronizes every reconcilable dataset against the current
// configuration. Called at startup and on configuration reload.
func (s *Store) ReconcileAll(ctx context.Context) error {
	if _, err := s.ReconcileBoars(ctx); err != nil {
		return fmt.Errorf("reconcile %s: %w", KindBoars, err)
	}
	if _, err := s.ReconcileBoards(ctx); err != nil {
		return fmt.Errorf("reconcile %s: %w", KindLeaderboards, err)
	}
	if _, err := s.ReconcilePowerups(ctx); err != nil {
		return fmt.Errorf("reconcile %s: %w", KindPowerups, err)
	}
	if _, err := s.ReconcileQuests(ctx); err != nil {
		return fmt.Errorf("reconcile %s: %w", KindQuests, err)
	}
	return nil
}

// ReconcileBoars loads the boar catalogue and synchronizes its keys against
// configuration: configured boars gain a fresh entry, retired boars are
// dropped. The reconciled dataset is persisted before returning.
func (s *Store) ReconcileBoars(ctx context.Context) (domain.BoarsData, error) {
	var data domain.BoarsData
	err := s.locks.WithLock(KindBoars, func() error {
		if err := s.loadOrSeed(ctx, KindBoars, &data, func() interface{} { return s.seedBoars() }); err != nil {
			return err
		}
		metrics.ReconcileRuns.WithLabelValues(KindBoars).Inc()

		for id := range s.cfg.Boars {
			if _, ok := data[id]; !ok {
				data[id] = &domain.BoarInfo{}
			}
		}
		for id := range data {
			if _, ok := s.cfg.Boars[id]; !ok {
				delete(data, id)
			}
		}
		return s.save(KindBoars, data)
	})
	return data, err
}

// ReconcileBoards loads the leaderboard dataset, adds a default empty board
// for every configured metric and drops boards whose metric is no longer
// configured, then persists.
func (s *Store) ReconcileBoards(ctx context.Context) (domain.BoardsData, error) {
	var data domain.BoardsData
	err := s.locks.WithLock(KindLeaderboards, func() error {
		if err := s.loadOrSeed(ctx, KindLeaderboards, &data, func() interface{} { return s.seedBoards() }); err != nil {
			return err
		}
		metrics.ReconcileRuns.WithLabelValues(KindLeaderboards).Inc()

		configured := make(map[string]bool, len(s.cfg.Boards))
		for _, metric := range s.cfg.Boards {
			configured[metric] = true
			if _, ok := data[metric]; !ok {
				data[metric] = &domain.BoardData{UserData: make(map[string]*domain.BoardEntry)}
			}
		}
		for metric := range data {
			if !configured[metric] {
				delete(data, metric)
			}
		}
		return s.save(KindLeaderboards, data)
	})
	return data, err
}

// ReconcilePowerups loads the powerup market and synchronizes its keys
// against configuration. Retired keys are deleted only after every
// outstanding order has been compensated, so no value is silently lost when
// a powerup leaves configuration.
func (s *Store) ReconcilePowerups(ctx context.Context) (domain.ItemsData, error) {
	log := logger.FromContext(ctx)

	var data domain.ItemsData
	err := s.locks.WithLock(KindPowerups, func() error {
		if err := s.loadOrSeed(ctx, KindPowerups, &data, func() interface{} { return s.seedPowerups() }); err != nil {
			return err
		}
		metrics.ReconcileRuns.WithLabelValues(KindPowerups).Inc()

		for id := range s.cfg.Powerups {
			if _, ok := data[id]; !ok {
				data[id] = &domain.ItemData{Buyers: []*domain.Order{}, Sellers: []*domain.Order{}}
			}
		}

		var comps []domain.Compensation
		for id, item := range data {
			if _, ok := s.cfg.Powerups[id]; ok {
				continue
			}
			comps = append(comps, CompensateOrders(id, item)...)
			delete(data, id)
		}

		if len(comps) > 0 {
			if err := s.comp.Compensate(ctx, comps); err != nil {
				return fmt.Errorf("failed to compensate retired powerup orders: %w", err)
			}
			var score int64
			for _, c := range comps {
				score += int64(c.Score)
			}
			metrics.CompensationPayouts.Add(float64(len(comps)))
			// A corrupt book can sum negative, and counters reject
			// negative adds.
			if score > 0 {
				metrics.CompensationScore.Add(float64(score))
			}
			log.Info("Compensated orders on retired powerups",
				"payouts", len(comps),
				"score_credited", score)
		}

		return s.save(KindPowerups, data)
	})
	return data, err
}

// CompensateOrders converts the open order book of a retired powerup into
// per-user payouts. Buyers get back the filled-but-unclaimed units plus the
// score value of the unfilled remainder; sellers get back the unfilled units
// plus the score value of what was filled but never claimed.
func CompensateOrders(itemID string, item *domain.ItemData) []domain.Compensation {
	var comps []domain.Compensation
	for _, o := range item.Buyers {
		comps = append(comps, domain.Compensation{
			UserID: o.UserID,
			ItemID: itemID,
			Units:  o.FilledAmount - o.ClaimedAmount,
			Score:  (o.Num - o.FilledAmount) * o.Price,
		})
	}
	for _, o := range item.Sellers {
		comps = append(comps, domain.Compensation{
			UserID: o.UserID,
			ItemID: itemID,
			Units:  o.Num - o.FilledAmount,
			Score:  (o.FilledAmount - o.ClaimedAmount) * o.Price,
		})
	}
	return comps
}

// ReconcileQuests loads the quest rotation and regenerates it when the stored
// window start is more than seven configured day-lengths old.
func (s *Store) ReconcileQuests(ctx context.Context) (*domain.QuestData, error) {
	log := logger.FromContext(ctx)

	var data domain.QuestData
	err := s.locks.WithLock(KindQuests, func() error {
		if err := s.loadOrSeed(ctx, KindQuests, &data, func() interface{} { return s.seedQuests() }); err != nil {
			return err
		}
		metrics.ReconcileRuns.WithLabelValues(KindQuests).Inc()

		age := s.now().UnixMilli() - data.QuestsStartTimestamp
		if age > 7*s.cfg.DayLengthMs {
			fresh := s.regenerateQuests()
			data = *fresh
			metrics.QuestRotations.Inc()
			log.Info("Quest rotation regenerated",
				"start_timestamp", data.QuestsStartTimestamp,
				"quest_ids", data.CurQuestIDs)
		}
		return s.save(KindQuests, &data)
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// regenerateQuests computes the most recent week boundary in the configured
// day-length unit and draws a fresh rotation without replacement from the
// configured quest pool.
func (s *Store) regenerateQuests() *domain.QuestData {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.UnixMilli() - int64(now.Weekday())*s.cfg.DayLengthMs

	count := s.cfg.NumActiveQuests
	pool := make([]string, len(s.cfg.QuestIDs))
	copy(pool, s.cfg.QuestIDs)
	if count > len(pool) {
		count = len(pool)
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		idx := s.randInt(0, len(pool)-1)
		ids = append(ids, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return &domain.QuestData{
		QuestsStartTimestamp: start,
		CurQuestIDs:          ids,
	}
}
