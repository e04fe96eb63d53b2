package store

import (
	"context"
	"errors"
	"os"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
)

// AvailabilityCheck reports whether the external dependency channel for the
// release-metadata cache is reachable. Creation of the cache is skipped
// entirely while it returns false; this is not an error condition.
type AvailabilityCheck func() bool

// EnsureGitHubData lazily creates the optional release-metadata cache.
// Returns the cached data, or nil when the cache does not exist and the
// dependency channel is unavailable.
func (s *Store) EnsureGitHubData(ctx context.Context, available AvailabilityCheck) (*domain.GitHubData, error) {
	log := logger.FromContext(ctx)

	var data *domain.GitHubData
	err := s.locks.WithLock(KindGitHub, func() error {
		var gd domain.GitHubData
		err := s.loadExisting(KindGitHub, &gd)
		if err == nil {
			data = &gd
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("Release metadata cache unreadable", "error", err)
		}
		if available == nil || !available() {
			log.Debug("Dependency channel unavailable, skipping release metadata cache")
			return nil
		}

		fresh := &domain.GitHubData{CheckedAt: s.now().UnixMilli()}
		if err := s.save(KindGitHub, fresh); err != nil {
			return err
		}
		data = fresh
		return nil
	})
	return data, err
}

// SaveGitHubData persists the release-metadata cache.
func (s *Store) SaveGitHubData(ctx context.Context, data *domain.GitHubData) error {
	return s.locks.WithLock(KindGitHub, func() error {
		return s.save(KindGitHub, data)
	})
}
