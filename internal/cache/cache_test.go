package cache

import (
	"os"
	"path/filepath"
	"testing"

	"budgetlytic/expense-ai/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCachePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.yaml")

	c := NewFileCache(path, logging.NewMockLogger())
	_, ok := c.Get("banana")
	assert.False(t, ok)

	require.NoError(t, c.Put("banana", []string{"fruit", "food"}))
	require.NoError(t, c.Put("xyzzy", []string{}))

	// A fresh instance reads the file written by the first one.
	reloaded := NewFileCache(path, logging.NewMockLogger())
	assert.Equal(t, 2, reloaded.Len())

	neighbors, ok := reloaded.Get("banana")
	assert.True(t, ok)
	assert.Equal(t, []string{"fruit", "food"}, neighbors)
}

func TestFileCacheEmptySetIsAHit(t *testing.T) {
	c := NewFileCache(filepath.Join(t.TempDir(), "cache.yaml"), logging.NewMockLogger())
	require.NoError(t, c.Put("nonsense", []string{}))

	neighbors, ok := c.Get("nonsense")
	assert.True(t, ok)
	assert.Empty(t, neighbors)
}

func TestFileCacheCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0o644))

	log := logging.NewMockLogger()
	c := NewFileCache(path, log)

	assert.Equal(t, 0, c.Len())
	assert.True(t, log.HasMessage("Corrupt lookup cache file, starting empty"))
}

func TestFileCacheWithoutPath(t *testing.T) {
	c := NewFileCache("", logging.NewMockLogger())
	require.NoError(t, c.Put("term", []string{"label"}))

	neighbors, ok := c.Get("term")
	assert.True(t, ok)
	assert.Equal(t, []string{"label"}, neighbors)
	require.NoError(t, c.Flush())
}

func TestMemoryCacheEvictsOldest(t *testing.T) {
	c, err := NewMemoryCache(2)
	require.NoError(t, err)

	require.NoError(t, c.Put("a", []string{"1"}))
	require.NoError(t, c.Put("b", []string{"2"}))
	require.NoError(t, c.Put("c", []string{"3"}))

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")

	neighbors, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, []string{"3"}, neighbors)
	assert.Equal(t, 2, c.Len())
	require.NoError(t, c.Flush())
}
