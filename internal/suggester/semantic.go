package suggester

import (
	"context"

	"budgetlytic/expense-ai/internal/cache"
	"budgetlytic/expense-ai/internal/logging"
)

// RelationClient is the external "is-a" relation lookup. The production
// implementation is the ConceptNet HTTP client.
type RelationClient interface {
	Related(ctx context.Context, term string) ([]string, error)
}

// Expander resolves semantic neighbors for tokens through a persistent
// cache, so a term is fetched from the network at most once across the
// process lifetime and across restarts.
type Expander struct {
	client RelationClient
	cache  cache.Cache
	log    logging.Logger
}

// NewExpander creates an Expander backed by the given relation client and cache.
func NewExpander(client RelationClient, c cache.Cache, logger logging.Logger) *Expander {
	return &Expander{client: client, cache: c, log: logger}
}

// Neighbors returns the cached or freshly fetched neighbor set for a term.
// Lookup failures degrade to an empty set and are only logged; they are not
// cached, so a transient outage does not poison the term forever. Successful
// results, including empty ones, are stored and persisted immediately.
func (e *Expander) Neighbors(ctx context.Context, term string) []string {
	if neighbors, ok := e.cache.Get(term); ok {
		return neighbors
	}

	neighbors, err := e.client.Related(ctx, term)
	if err != nil {
		e.log.WithError(err).WithField("term", term).Debug("Semantic lookup failed, treating as no neighbors")
		return nil
	}
	if neighbors == nil {
		neighbors = []string{}
	}

	if err := e.cache.Put(term, neighbors); err != nil {
		e.log.WithError(err).WithField("term", term).Warn("Failed to persist lookup cache entry")
	}
	return neighbors
}
