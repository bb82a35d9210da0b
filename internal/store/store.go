// Package store provides YAML-file persistence for category definitions.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"budgetlytic/expense-ai/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads and saves the category override file. The file holds
// the complete category set: saving always rewrites it wholesale.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store backed by the given file path.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// Exists reports whether the override file is present on disk.
func (s *CategoryStore) Exists() bool {
	if s.CategoriesFile == "" {
		return false
	}
	_, err := os.Stat(s.CategoriesFile)
	return err == nil
}

// LoadCategories reads the category definitions from the override file.
// A missing file returns an empty slice and no error; a malformed file
// returns an error so the caller can fall back to built-in defaults.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if !s.Exists() {
		return []models.CategoryConfig{}, nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred format: "categories: [...]" under a top-level key.
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array of category objects.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil && len(categories) > 0 {
		return categories, nil
	}

	return nil, fmt.Errorf("error parsing categories file %s: unrecognized format", s.CategoriesFile)
}

// SaveCategories rewrites the override file with the full category set.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	if s.CategoriesFile == "" {
		return fmt.Errorf("no categories file configured")
	}

	dir := filepath.Dir(s.CategoriesFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(s.CategoriesFile, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}
