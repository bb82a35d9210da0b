// Package registry holds the category definitions and the derived
// keyword-to-categories index used by every matching tier.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"budgetlytic/expense-ai/internal/logging"
	"budgetlytic/expense-ai/internal/models"
)

// ErrDuplicateCategory is returned by AddCategory when a category with the
// same name (case-sensitive) already exists.
var ErrDuplicateCategory = errors.New("category already exists")

// Store is the persistence boundary the registry depends on.
type Store interface {
	Exists() bool
	LoadCategories() ([]models.CategoryConfig, error)
	SaveCategories(categories []models.CategoryConfig) error
}

// Registry owns the category set. Reads go through an immutable View that is
// swapped atomically on mutation, so concurrent readers always observe either
// the pre- or post-mutation state and never a partially rebuilt index.
type Registry struct {
	mu    sync.RWMutex
	view  *View
	store Store
	log   logging.Logger
}

// Load builds a registry from the built-in defaults. If the override file
// exists, its contents replace the defaults entirely; this all-or-nothing
// policy matches the persisted file being a full snapshot of the registry.
// A malformed override file falls back to the defaults and is never fatal.
func Load(defaults []models.CategoryConfig, store Store, logger logging.Logger) *Registry {
	categories := defaults

	if store != nil && store.Exists() {
		loaded, err := store.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load category override file, using built-in defaults")
		} else if len(loaded) > 0 {
			logger.WithFields(
				logging.Field{Key: "loaded", Value: len(loaded)},
				logging.Field{Key: "replaced_defaults", Value: len(defaults)},
			).Warn("Category override file replaces the entire built-in set")
			categories = loaded
		}
	}

	return &Registry{
		view:  buildView(categories),
		store: store,
		log:   logger,
	}
}

// View returns the current immutable snapshot of the registry. All reads
// during a single suggestion run should go through one snapshot.
func (r *Registry) View() *View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

// AddCategory appends a new category, rebuilds the keyword index, and
// persists the full registry to the override file. Every subsequent View
// call reflects the new category immediately.
func (r *Registry) AddCategory(name, glyph string, keywords []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.view.categories {
		if c.Name == name {
			return fmt.Errorf("%q: %w", name, ErrDuplicateCategory)
		}
	}

	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		normalized = append(normalized, kw)
	}

	categories := make([]models.CategoryConfig, len(r.view.categories), len(r.view.categories)+1)
	copy(categories, r.view.categories)
	categories = append(categories, models.CategoryConfig{
		Name:     name,
		Glyph:    glyph,
		Keywords: normalized,
	})

	if r.store != nil {
		if err := r.store.SaveCategories(categories); err != nil {
			return fmt.Errorf("persisting registry: %w", err)
		}
	}

	r.view = buildView(categories)
	r.log.WithFields(
		logging.Field{Key: "category", Value: name},
		logging.Field{Key: "keywords", Value: len(normalized)},
	).Info("Added custom category")
	return nil
}

// View is an immutable snapshot of the registry: the category list, the
// derived keyword index, and the ranking order. Callers must not mutate the
// returned slices or maps.
type View struct {
	categories []models.CategoryConfig
	names      []string
	keywords   []string // unique keywords in first-declared order
	index      map[string][]string
	ranks      map[string]int
	glyphs     map[string]string
}

func buildView(categories []models.CategoryConfig) *View {
	v := &View{
		categories: categories,
		names:      make([]string, 0, len(categories)),
		index:      make(map[string][]string),
		ranks:      make(map[string]int, len(categories)),
		glyphs:     make(map[string]string, len(categories)),
	}

	for i, cat := range categories {
		v.names = append(v.names, cat.Name)
		v.glyphs[cat.Name] = cat.Glyph

		// Explicit priority wins; otherwise insertion order assigns the rank.
		rank := cat.Priority
		if rank <= 0 {
			rank = i + 1
		}
		v.ranks[cat.Name] = rank

		for _, kw := range cat.Keywords {
			kw = strings.ToLower(kw)
			if _, known := v.index[kw]; !known {
				v.keywords = append(v.keywords, kw)
			}
			if !containsName(v.index[kw], cat.Name) {
				v.index[kw] = append(v.index[kw], cat.Name)
			}
		}
	}
	return v
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns category names in registry order.
func (v *View) Names() []string { return v.names }

// Categories returns the category definitions in registry order.
func (v *View) Categories() []models.CategoryConfig { return v.categories }

// Keywords returns every distinct keyword in first-declared order. The stable
// order keeps fuzzy matching and containment scans deterministic.
func (v *View) Keywords() []string { return v.keywords }

// KeywordIndex returns the derived keyword-to-category-names map.
func (v *View) KeywordIndex() map[string][]string { return v.index }

// CategoriesFor returns the categories owning a keyword, in declaration order.
func (v *View) CategoriesFor(keyword string) []string { return v.index[keyword] }

// Rank returns a category's tie-break rank; lower ranks win ties. Unknown
// names rank at zero, ahead of everything.
func (v *View) Rank(name string) int { return v.ranks[name] }

// Glyph returns a category's display glyph, if any.
func (v *View) Glyph(name string) string { return v.glyphs[name] }
