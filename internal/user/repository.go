package user

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/utils"
)

// Repository owns the per-user profile documents, one JSON file per user ID.
type Repository struct {
	dir   string
	locks *concurrency.LockManager
}

// NewRepository creates a Repository over dir. The directory is created if
// missing.
func NewRepository(dir string, locks *concurrency.LockManager) (*Repository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Repository{dir: dir, locks: locks}, nil
}

func (r *Repository) path(userID string) string {
	return filepath.Join(r.dir, userID+".json")
}

func (r *Repository) lockKey(userID string) string {
	return "user:" + userID
}

// Get loads a user profile. Returns domain.ErrUserNotFound when no profile
// exists.
func (r *Repository) Get(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.locks.WithLock(r.lockKey(userID), func() error {
		return utils.LoadJSON(r.path(userID), &u)
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, err
	}
	return &u, nil
}

// GetOrCreate loads a user profile, creating a fresh one when absent.
func (r *Repository) GetOrCreate(ctx context.Context, userID, username string) (*domain.User, error) {
	var u domain.User
	err := r.locks.WithLock(r.lockKey(userID), func() error {
		err := utils.LoadJSON(r.path(userID), &u)
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(ctx).Warn("User profile unreadable, recreating", "user_id", userID, "error", err)
		}
		u = domain.User{
			ID:         userID,
			Username:   username,
			Boars:      make(map[string]int),
			Powerups:   make(map[string]int),
			Multiplier: 1,
		}
		return utils.SaveJSON(r.path(userID), &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Save persists a user profile.
func (r *Repository) Save(ctx context.Context, u *domain.User) error {
	return r.locks.WithLock(r.lockKey(u.ID), func() error {
		return utils.SaveJSON(r.path(u.ID), u)
	})
}

// Update runs fn against a user profile and persists the result under the
// user's lock. fn returning an error aborts the save.
func (r *Repository) Update(ctx context.Context, userID string, fn func(*domain.User) error) error {
	return r.locks.WithLock(r.lockKey(userID), func() error {
		var u domain.User
		if err := utils.LoadJSON(r.path(userID), &u); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
			}
			return err
		}
		if err := fn(&u); err != nil {
			return err
		}
		return utils.SaveJSON(r.path(userID), &u)
	})
}

// Compensate credits payouts from retired powerup market keys to the
// affected users. Missing profiles are logged and skipped; one unreachable
// user must not block the payout of the rest.
func (r *Repository) Compensate(ctx context.Context, comps []domain.Compensation) error {
	log := logger.FromContext(ctx)

	for _, c := range comps {
		err := r.Update(ctx, c.UserID, func(u *domain.User) error {
			if c.Units > 0 {
				u.AddPowerup(c.ItemID, c.Units)
			}
			u.Score += int64(c.Score)
			return nil
		})
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				log.Warn("Skipping compensation for unknown user",
					"user_id", c.UserID, "item_id", c.ItemID)
				continue
			}
			return err
		}
		log.Debug("Compensated user for retired powerup",
			"user_id", c.UserID,
			"item_id", c.ItemID,
			"units", c.Units,
			"score", c.Score)
	}
	return nil
}
