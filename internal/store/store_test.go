package store

import (
	"os"
	"path/filepath"
	"testing"

	"budgetlytic/expense-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "categories.yaml")
	store := NewCategoryStore(path)

	assert.False(t, store.Exists())

	categories := []models.CategoryConfig{
		{Name: "Groceries", Priority: 1, Glyph: "🛒", Keywords: []string{"milk", "bread"}},
		{Name: "Pets", Glyph: "🐶", Keywords: []string{"dog", "cat"}},
	}
	require.NoError(t, store.SaveCategories(categories))
	assert.True(t, store.Exists())

	loaded, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, categories, loaded)
}

func TestCategoryStoreLoadMissingFile(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "absent.yaml"))

	loaded, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCategoryStoreLoadBareArrayFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	data := `- name: Travel
  glyph: "✈️"
  keywords:
    - hotel
    - visa
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	loaded, err := NewCategoryStore(path).LoadCategories()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Travel", loaded[0].Name)
	assert.Equal(t, []string{"hotel", "visa"}, loaded[0].Keywords)
}

func TestCategoryStoreLoadUnrecognizedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("just a string\n"), 0o644))

	_, err := NewCategoryStore(path).LoadCategories()
	assert.Error(t, err)
}

func TestCategoryStoreSaveWithoutPath(t *testing.T) {
	store := NewCategoryStore("")
	assert.False(t, store.Exists())
	assert.Error(t, store.SaveCategories(nil))
}
