package utils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusklore/tuskbot/internal/utils"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	require.NoError(t, utils.SaveJSON(path, doc{Name: "mud", Count: 3}))

	var got doc
	require.NoError(t, utils.LoadJSON(path, &got))
	assert.Equal(t, doc{Name: "mud", Count: 3}, got)
}

func TestLoadJSON_MissingFile(t *testing.T) {
	var got doc
	err := utils.LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &got)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var got doc
	assert.Error(t, utils.LoadJSON(path, &got))
}

func TestSaveJSON_ReplacesExistingAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	require.NoError(t, utils.SaveJSON(path, doc{Name: "old"}))
	require.NoError(t, utils.SaveJSON(path, doc{Name: "new"}))

	var got doc
	require.NoError(t, utils.LoadJSON(path, &got))
	assert.Equal(t, "new", got.Name)

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestSaveJSON_UnmarshalableData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	assert.Error(t, utils.SaveJSON(path, make(chan int)))
}
