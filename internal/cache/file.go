package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"budgetlytic/expense-ai/internal/logging"
	"budgetlytic/expense-ai/internal/models"

	"gopkg.in/yaml.v3"
)

// entry is the in-memory record for one cached term.
type entry struct {
	neighbors []string
	fetchedAt time.Time
}

// FileCache is a YAML-file-backed Cache. The persisted format is a flat
// mapping from term to neighbor list. Every Put rewrites the file, so the
// cache survives restarts without a separate flush step.
type FileCache struct {
	path string
	log  logging.Logger

	mu      sync.Mutex
	entries map[string]entry
}

// NewFileCache loads the persisted cache from path. A missing, unreadable,
// or corrupt file starts an empty cache; that is never fatal.
func NewFileCache(path string, logger logging.Logger) *FileCache {
	c := &FileCache{
		path:    path,
		log:     logger,
		entries: make(map[string]entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Failed to read lookup cache file, starting empty")
		}
		return c
	}

	var persisted map[string][]string
	if err := yaml.Unmarshal(data, &persisted); err != nil {
		logger.WithError(err).WithField("path", path).Warn("Corrupt lookup cache file, starting empty")
		return c
	}

	now := time.Now()
	for term, neighbors := range persisted {
		c.entries[term] = entry{neighbors: neighbors, fetchedAt: now}
	}
	logger.WithField("entries", len(c.entries)).Debug("Loaded lookup cache")
	return c
}

// Get returns the cached neighbor set for a term.
func (c *FileCache) Get(term string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[term]
	if !ok {
		return nil, false
	}
	return e.neighbors, true
}

// Put stores a neighbor set and persists the whole cache to disk. The write
// happens under the cache mutex so concurrent misses cannot interleave their
// read-modify-write sequences on the backing file.
func (c *FileCache) Put(term string, neighbors []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[term] = entry{neighbors: neighbors, fetchedAt: time.Now()}
	return c.persistLocked()
}

// Flush persists the current cache contents to disk.
func (c *FileCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked()
}

// Len returns the number of cached terms.
func (c *FileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *FileCache) persistLocked() error {
	if c.path == "" {
		return nil
	}

	persisted := make(map[string][]string, len(c.entries))
	for term, e := range c.entries {
		neighbors := e.neighbors
		if neighbors == nil {
			neighbors = []string{}
		}
		persisted[term] = neighbors
	}

	data, err := yaml.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("error marshaling lookup cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing lookup cache: %w", err)
	}
	return nil
}
