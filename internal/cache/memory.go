package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryCache is an in-memory LRU Cache for deployments that do not want a
// cache file on disk. Size-bounded, nothing is persisted.
type MemoryCache struct {
	lru *lru.Cache[string, []string]
}

// NewMemoryCache creates an LRU cache holding at most size terms.
func NewMemoryCache(size int) (*MemoryCache, error) {
	l, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l}, nil
}

// Get returns the cached neighbor set for a term.
func (c *MemoryCache) Get(term string) ([]string, bool) {
	return c.lru.Get(term)
}

// Put stores a neighbor set, evicting the least recently used term when full.
func (c *MemoryCache) Put(term string, neighbors []string) error {
	c.lru.Add(term, neighbors)
	return nil
}

// Flush is a no-op for the in-memory backend.
func (c *MemoryCache) Flush() error { return nil }

// Len returns the number of cached terms.
func (c *MemoryCache) Len() int { return c.lru.Len() }
