// Package cache provides the lookup cache for semantic neighbor queries.
// The cache is injected into the engine behind a small interface so the
// file-backed store can be swapped for an in-memory LRU or any other
// key-value backend without touching the scoring code.
package cache

// Cache stores neighbor sets keyed by the queried term. Entries are
// append-only during normal operation: the engine never evicts or
// invalidates what a backend has accepted.
type Cache interface {
	// Get returns the stored neighbor set for a term. The second return is
	// false on a miss. A stored empty set is a hit: terms with no neighbors
	// are cached too, so the same dead-end term is never re-queried.
	Get(term string) ([]string, bool)

	// Put stores the neighbor set for a term. Backends with durable storage
	// persist immediately.
	Put(term string, neighbors []string) error

	// Flush writes any buffered state to durable storage. A no-op for purely
	// in-memory backends.
	Flush() error
}
