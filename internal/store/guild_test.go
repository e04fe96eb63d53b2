package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusklore/tuskbot/internal/concurrency"
	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/store"
)

func newTestGuildStore(t *testing.T) (*store.GuildStore, string) {
	t.Helper()
	dir := t.TempDir()
	gs, err := store.NewGuildStore(dir, concurrency.NewLockManager())
	require.NoError(t, err)
	return gs, dir
}

func TestGuildGet_AbsentWithoutCreate(t *testing.T) {
	gs, _ := newTestGuildStore(t)

	data, err := gs.Get(context.Background(), "g1", false)
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, data)
}

func TestGuildGet_CreatesDefaultDocument(t *testing.T) {
	gs, dir := newTestGuildStore(t)
	ctx := context.Background()

	data, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "g1", data.GuildID)
	assert.False(t, data.FullySetup)

	_, statErr := os.Stat(filepath.Join(dir, "g1.json"))
	assert.NoError(t, statErr)
}

func TestGuildRemove_IncompleteSetup(t *testing.T) {
	gs, dir := newTestGuildStore(t)
	ctx := context.Background()

	_, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)

	require.NoError(t, gs.Remove(ctx, "g1"))
	_, statErr := os.Stat(filepath.Join(dir, "g1.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGuildRemove_FullySetupIsProtected(t *testing.T) {
	gs, dir := newTestGuildStore(t)
	ctx := context.Background()

	data, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)
	data.FullySetup = true
	require.NoError(t, gs.Save(ctx, data))

	require.NoError(t, gs.Remove(ctx, "g1"), "protected removal is a no-op, not an error")
	_, statErr := os.Stat(filepath.Join(dir, "g1.json"))
	assert.NoError(t, statErr, "fully set up guild data must survive")
}

func TestGuildGet_ReturnsPrivateCopies(t *testing.T) {
	gs, _ := newTestGuildStore(t)
	ctx := context.Background()

	first, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)

	second, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "cached document must not be shared between callers")

	// Mutating one caller's copy never shows through another read.
	first.IsSBServer = true
	first.ChannelIDs = append(first.ChannelIDs, "c1")

	third, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.False(t, third.IsSBServer)
	assert.Empty(t, third.ChannelIDs)
}

func TestGuildUpdate_CreatesWhenAbsent(t *testing.T) {
	gs, _ := newTestGuildStore(t)
	ctx := context.Background()

	updated, err := gs.Update(ctx, "g1", func(g *domain.GuildData) error {
		g.IsSBServer = true
		g.FullySetup = true
		g.ChannelIDs = append(g.ChannelIDs, "c1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", updated.GuildID)

	reloaded, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.IsSBServer)
	assert.True(t, reloaded.FullySetup)
	assert.Equal(t, []string{"c1"}, reloaded.ChannelIDs)
}

func TestGuildUpdate_FnErrorAbortsSave(t *testing.T) {
	gs, _ := newTestGuildStore(t)
	ctx := context.Background()

	_, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)

	_, err = gs.Update(ctx, "g1", func(g *domain.GuildData) error {
		g.FullySetup = true
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	reloaded, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.FullySetup)
}

func TestGuildUpdate_ConcurrentUpdatesAllRecorded(t *testing.T) {
	gs, _ := newTestGuildStore(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)

	wg.Add(writers)
	for n := 0; n < writers; n++ {
		go func(n int) {
			defer wg.Done()
			_, errs[n] = gs.Update(ctx, "g1", func(g *domain.GuildData) error {
				g.ChannelIDs = append(g.ChannelIDs, fmt.Sprintf("c%d", n))
				return nil
			})
		}(n)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	data, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Len(t, data.ChannelIDs, writers, "no concurrent update may be lost")
}

func TestGuildSave_RefreshesCache(t *testing.T) {
	gs, _ := newTestGuildStore(t)
	ctx := context.Background()

	data, err := gs.Get(ctx, "g1", true)
	require.NoError(t, err)

	data.IsSBServer = true
	require.NoError(t, gs.Save(ctx, data))

	reloaded, err := gs.Get(ctx, "g1", false)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.IsSBServer)
}
