package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/utils"
)

// Guild document cache sizing. Reads dominate guild lookups, so a small
// expiring LRU in front of the filesystem saves most of the document parses.
const (
	guildCacheSize = 256
	guildCacheTTL  = 5 * time.Minute
)

// GuildStore owns the per-guild JSON documents, one per guild ID.
type GuildStore struct {
	dir   string
	locks *concurrency.LockManager
	cache *expirable.LRU[string, *domain.GuildData]
}

// NewGuildStore creates a GuildStore over dir. The directory is created if
// missing.
func NewGuildStore(dir string, locks *concurrency.LockManager) (*GuildStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &GuildStore{
		dir:   dir,
		locks: locks,
		cache: expirable.NewLRU[string, *domain.GuildData](guildCacheSize, nil, guildCacheTTL),
	}, nil
}

func (gs *GuildStore) path(guildID string) string {
	return filepath.Join(gs.dir, guildID+".json")
}

func (gs *GuildStore) lockKey(guildID string) string {
	return "guild:" + guildID
}

// Get loads a guild document. When the document is absent and createIfMissing
// is set, a default not-yet-configured document is persisted and re-read.
// Absent without creation returns (nil, nil), not an error. The returned
// document is the caller's own copy; writes go through Update or Save.
func (gs *GuildStore) Get(ctx context.Context, guildID string, createIfMissing bool) (*domain.GuildData, error) {
	if data, ok := gs.cache.Get(guildID); ok {
		return data.Clone(), nil
	}

	var data *domain.GuildData
	err := gs.locks.WithLock(gs.lockKey(guildID), func() error {
		var gd domain.GuildData
		err := utils.LoadJSON(gs.path(guildID), &gd)
		if err == nil {
			data = &gd
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(ctx).Warn("Guild document unreadable", "guild_id", guildID, "error", err)
		}
		if !createIfMissing {
			return nil
		}

		fresh := &domain.GuildData{GuildID: guildID}
		if err := utils.SaveJSON(gs.path(guildID), fresh); err != nil {
			return fmt.Errorf("failed to create guild document %s: %w", guildID, err)
		}
		var reloaded domain.GuildData
		if err := utils.LoadJSON(gs.path(guildID), &reloaded); err != nil {
			return err
		}
		data = &reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data != nil {
		gs.cache.Add(guildID, data.Clone())
	}
	return data, nil
}

// Update runs fn against the guild document and persists the result, all
// under the guild lock so concurrent read-modify-write cycles cannot
// interleave. The document is created first when absent. fn returning an
// error aborts the save.
func (gs *GuildStore) Update(ctx context.Context, guildID string, fn func(*domain.GuildData) error) (*domain.GuildData, error) {
	var updated *domain.GuildData
	err := gs.locks.WithLock(gs.lockKey(guildID), func() error {
		var gd domain.GuildData
		if err := utils.LoadJSON(gs.path(guildID), &gd); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.FromContext(ctx).Warn("Guild document unreadable, recreating", "guild_id", guildID, "error", err)
			}
			gd = domain.GuildData{GuildID: guildID}
		}
		if err := fn(&gd); err != nil {
			return err
		}
		if err := utils.SaveJSON(gs.path(guildID), &gd); err != nil {
			return err
		}
		updated = &gd
		return nil
	})
	if err != nil {
		return nil, err
	}
	gs.cache.Add(guildID, updated.Clone())
	return updated, nil
}

// Save persists a guild document and refreshes the cache.
func (gs *GuildStore) Save(ctx context.Context, data *domain.GuildData) error {
	err := gs.locks.WithLock(gs.lockKey(data.GuildID), func() error {
		return utils.SaveJSON(gs.path(data.GuildID), data)
	})
	if err != nil {
		return err
	}
	gs.cache.Add(data.GuildID, data.Clone())
	return nil
}

// Remove deletes a guild document, but only while setup is incomplete.
// Removing a fully configured guild here is a protected no-op; forced
// deletion needs an explicit separate path.
func (gs *GuildStore) Remove(ctx context.Context, guildID string) error {
	log := logger.FromContext(ctx)

	err := gs.locks.WithLock(gs.lockKey(guildID), func() error {
		var gd domain.GuildData
		if err := utils.LoadJSON(gs.path(guildID), &gd); err != nil {
			// Nothing to remove
			return nil
		}
		if gd.FullySetup {
			log.Debug("Refusing to remove fully set up guild", "guild_id", guildID)
			return nil
		}
		return os.Remove(gs.path(guildID))
	})
	if err != nil {
		return err
	}
	gs.cache.Remove(guildID)
	return nil
}
