package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/config"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/metrics"
	"github.com/tusklore/tuskbot/internal/utils"
)

// Dataset kind constants. Each kind is backed by one JSON document under the
// store directory.
const (
	KindBoars        = "boars"
	KindLeaderboards = "leaderboards"
	KindPowerups     = "powerups"
	KindQuests       = "quests"
	KindBannedUsers  = "bannedusers"
	KindGitHub       = "github"
)

// Compensator credits users for open orders on powerups retired from
// configuration. The user repository implements it.
type Compensator interface {
	Compensate(ctx context.Context, comps []domain.Compensation) error
}

// Store owns the global dataset documents. All access runs under a per-kind
// lock covering the full load-reconcile-mutate-save cycle, so concurrent
// callers can never interleave read-modify-write on the same dataset.
type Store struct {
	dir   string
	cfg   *config.GameConfig
	locks *concurrency.LockManager
	comp  Compensator

	// Injectable for testing
	now     func() time.Time
	randInt func(min, max int) int
}

// New creates a Store over dir. The directory is created if missing.
func New(dir string, cfg *config.GameConfig, locks *concurrency.LockManager, comp Compensator) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{
		dir:     dir,
		cfg:     cfg,
		locks:   locks,
		comp:    comp,
		now:     time.Now,
		randInt: utils.RandomInt,
	}, nil
}

// WithClock overrides the time source. Tests use this to pin the quest
// rotation window.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithRandom overrides the random source used for quest draws.
func (s *Store) WithRandom(randInt func(min, max int) int) *Store {
	s.randInt = randInt
	return s
}

func (s *Store) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// loadOrSeed reads the document for kind into target. A missing or corrupt
// file is never an error: the seeded default is persisted and loaded instead.
func (s *Store) loadOrSeed(ctx context.Context, kind string, target interface{}, seed func() interface{}) error {
	log := logger.FromContext(ctx)
	metrics.DatasetLoads.WithLabelValues(kind).Inc()

	err := utils.LoadJSON(s.path(kind), target)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		log.Warn("Dataset unreadable, synthesizing default", "kind", kind, "error", err)
	}

	metrics.DatasetSeeds.WithLabelValues(kind).Inc()
	fresh := seed()
	if err := s.save(kind, fresh); err != nil {
		return err
	}
	return utils.LoadJSON(s.path(kind), target)
}

// loadExisting reads the document for kind without seeding a default.
func (s *Store) loadExisting(kind string, target interface{}) error {
	metrics.DatasetLoads.WithLabelValues(kind).Inc()
	return utils.LoadJSON(s.path(kind), target)
}

// save serializes and atomically replaces the document for kind.
// Write failures propagate to the caller; silent data loss is unacceptable.
func (s *Store) save(kind string, data interface{}) error {
	metrics.DatasetSaves.WithLabelValues(kind).Inc()
	return utils.SaveJSON(s.path(kind), data)
}

// LoadBoars returns the global boar catalogue, seeding it on first use.
func (s *Store) LoadBoars(ctx context.Context) (domain.BoarsData, error) {
	var data domain.BoarsData
	err := s.locks.WithLock(KindBoars, func() error {
		return s.loadOrSeed(ctx, KindBoars, &data, func() interface{} { return s.seedBoars() })
	})
	return data, err
}

// SaveBoars persists the boar catalogue.
func (s *Store) SaveBoars(ctx context.Context, data domain.BoarsData) error {
	return s.locks.WithLock(KindBoars, func() error {
		return s.save(KindBoars, data)
	})
}

// UpdateBoars runs fn against the boar catalogue and persists the result,
// all under the dataset lock.
func (s *Store) UpdateBoars(ctx context.Context, fn func(domain.BoarsData) error) error {
	return s.locks.WithLock(KindBoars, func() error {
		var data domain.BoarsData
		if err := s.loadOrSeed(ctx, KindBoars, &data, func() interface{} { return s.seedBoars() }); err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return err
		}
		return s.save(KindBoars, data)
	})
}

// LoadBoards returns the leaderboard dataset, seeding it on first use.
func (s *Store) LoadBoards(ctx context.Context) (domain.BoardsData, error) {
	var data domain.BoardsData
	err := s.locks.WithLock(KindLeaderboards, func() error {
		return s.loadOrSeed(ctx, KindLeaderboards, &data, func() interface{} { return s.seedBoards() })
	})
	return data, err
}

// SaveBoards persists the leaderboard dataset.
func (s *Store) SaveBoards(ctx context.Context, data domain.BoardsData) error {
	return s.locks.WithLock(KindLeaderboards, func() error {
		return s.save(KindLeaderboards, data)
	})
}

// UpdateBoards runs fn against the leaderboard dataset and persists the
// result, all under the dataset lock. fn returning an error aborts the save.
func (s *Store) UpdateBoards(ctx context.Context, fn func(domain.BoardsData) error) error {
	return s.locks.WithLock(KindLeaderboards, func() error {
		var data domain.BoardsData
		if err := s.loadOrSeed(ctx, KindLeaderboards, &data, func() interface{} { return s.seedBoards() }); err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return err
		}
		return s.save(KindLeaderboards, data)
	})
}

// LoadPowerups returns the powerup market, seeding it on first use.
func (s *Store) LoadPowerups(ctx context.Context) (domain.ItemsData, error) {
	var data domain.ItemsData
	err := s.locks.WithLock(KindPowerups, func() error {
		return s.loadOrSeed(ctx, KindPowerups, &data, func() interface{} { return s.seedPowerups() })
	})
	return data, err
}

// SavePowerups persists the powerup market.
func (s *Store) SavePowerups(ctx context.Context, data domain.ItemsData) error {
	return s.locks.WithLock(KindPowerups, func() error {
		return s.save(KindPowerups, data)
	})
}

// LoadQuests returns the quest rotation, seeding it on first use.
func (s *Store) LoadQuests(ctx context.Context) (*domain.QuestData, error) {
	var data domain.QuestData
	err := s.locks.WithLock(KindQuests, func() error {
		return s.loadOrSeed(ctx, KindQuests, &data, func() interface{} { return s.seedQuests() })
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// LoadBannedUsers returns the banned-user list, seeding it on first use.
func (s *Store) LoadBannedUsers(ctx context.Context) (domain.BannedUsers, error) {
	var data domain.BannedUsers
	err := s.locks.WithLock(KindBannedUsers, func() error {
		return s.loadOrSeed(ctx, KindBannedUsers, &data, func() interface{} { return domain.BannedUsers{} })
	})
	return data, err
}

// SaveBannedUsers persists the banned-user list.
func (s *Store) SaveBannedUsers(ctx context.Context, data domain.BannedUsers) error {
	return s.locks.WithLock(KindBannedUsers, func() error {
		return s.save(KindBannedUsers, data)
	})
}

func (s *Store) seedBoars() domain.BoarsData {
	data := make(domain.BoarsData, len(s.cfg.Boars))
	for id := range s.cfg.Boars {
		data[id] = &domain.BoarInfo{}
	}
	return data
}

func (s *Store) seedBoards() domain.BoardsData {
	data := make(domain.BoardsData, len(s.cfg.Boards))
	for _, metric := range s.cfg.Boards {
		data[metric] = &domain.BoardData{UserData: make(map[string]*domain.BoardEntry)}
	}
	return data
}

func (s *Store) seedPowerups() domain.ItemsData {
	data := make(domain.ItemsData, len(s.cfg.Powerups))
	for id := range s.cfg.Powerups {
		data[id] = &domain.ItemData{Buyers: []*domain.Order{}, Sellers: []*domain.Order{}}
	}
	return data
}

func (s *Store) seedQuests() *domain.QuestData {
	return s.regenerateQuests()
}
