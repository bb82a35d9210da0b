// Package suggester ranks candidate spending categories for free-text
// expense descriptions. Scores are accumulated from four tiers: exact
// keyword matches, fuzzy string matches, semantic neighbor expansion, and a
// coarse large-amount prior. The ranked output carries a human-readable
// explanation for every suggested category.
package suggester

import (
	"context"
	"fmt"
	"strings"

	"budgetlytic/expense-ai/internal/config"
	"budgetlytic/expense-ai/internal/logging"
	"budgetlytic/expense-ai/internal/models"
	"budgetlytic/expense-ai/internal/registry"
	"budgetlytic/expense-ai/internal/textutils"

	"github.com/shopspring/decimal"
)

// Tier weights. Exact keyword hits dominate, fuzzy hits rank below them,
// semantic neighbors are a weak signal, and the amount prior is weakest.
const (
	weightExact     = 3
	weightFuzzy     = 2
	weightSemantic  = 1
	weightHeuristic = 1
)

// NeighborSource supplies semantically related terms for a token. The
// production implementation is the cached ConceptNet expander.
type NeighborSource interface {
	Neighbors(ctx context.Context, term string) []string
}

// Options tune the engine. Zero values fall back to the documented defaults.
type Options struct {
	// Mode selects the lexical tier: config.ModeSimple scans every keyword
	// for substring containment in the whole text; config.ModeAdvanced
	// tokenizes the text and runs exact plus fuzzy matching per token.
	Mode string

	// FuzzyThreshold is the minimum similarity (0-100) for a fuzzy keyword hit.
	FuzzyThreshold int

	// LargeAmountThreshold triggers the heuristic prior for amounts above it.
	LargeAmountThreshold decimal.Decimal
}

// Engine is the suggestion engine. It is stateless per call; the registry
// and the neighbor source carry all shared state and handle their own
// synchronization, so callers may invoke Suggest concurrently.
type Engine struct {
	registry  *registry.Registry
	neighbors NeighborSource
	ai        AIClient
	log       logging.Logger
	opts      Options
}

// New creates an Engine. neighbors may be nil, which disables the semantic
// tier entirely.
func New(reg *registry.Registry, neighbors NeighborSource, logger logging.Logger, opts Options) *Engine {
	if opts.Mode == "" {
		opts.Mode = config.ModeAdvanced
	}
	if opts.FuzzyThreshold == 0 {
		opts.FuzzyThreshold = 85
	}
	if opts.LargeAmountThreshold.IsZero() {
		opts.LargeAmountThreshold = decimal.NewFromInt(5000)
	}
	return &Engine{
		registry:  reg,
		neighbors: neighbors,
		log:       logger,
		opts:      opts,
	}
}

// SetAIClient attaches an optional model-backed fallback, consulted only
// when every other tier produced nothing.
func (e *Engine) SetAIClient(client AIClient) {
	e.ai = client
}

// Suggest ranks up to topN categories for the given text. For identical
// text, registry state, and cache state the output is reproducible
// byte for byte.
func (e *Engine) Suggest(ctx context.Context, text string, topN int) []models.Suggestion {
	if topN < 1 {
		topN = 3
	}

	view := e.registry.View()

	if strings.TrimSpace(text) == "" {
		return []models.Suggestion{fallbackSuggestion(view)}
	}

	board := newScoreboard()

	e.applyAmountHeuristic(text, view, board)

	if e.opts.Mode == config.ModeSimple {
		e.matchContainment(text, view, board)
	} else {
		e.matchTokens(ctx, text, view, board)
	}

	suggestions := board.rank(view, topN)

	if e.ai != nil && isFallbackOnly(suggestions) {
		if replaced, ok := e.consultAI(ctx, text, view); ok {
			return replaced
		}
	}
	return suggestions
}

// applyAmountHeuristic adds the coarse prior for large amounts: big figures
// skew toward housing and investment spending. A currency-marked number wins
// over a bare one; the last marked figure in the text is taken as the total.
func (e *Engine) applyAmountHeuristic(text string, view *registry.View, board *scoreboard) {
	amount, ok := textutils.ExtractAmount(text)
	if !ok {
		amount, ok = textutils.ExtractBareAmount(text)
	}
	if !ok || !amount.GreaterThan(e.opts.LargeAmountThreshold) {
		return
	}

	detail := fmt.Sprintf("amount %s (heuristic)", amount.String())
	for _, name := range models.LargeAmountCategories() {
		if view.Rank(name) == 0 {
			continue // category not present in this registry
		}
		board.add(name, models.TierHeuristic, weightHeuristic, detail)
	}
}

func (e *Engine) consultAI(ctx context.Context, text string, view *registry.View) ([]models.Suggestion, bool) {
	name, err := e.ai.PickCategory(ctx, text, view.Names())
	if err != nil {
		e.log.WithError(err).Warn("AI fallback categorization failed")
		return nil, false
	}
	if view.Rank(name) == 0 || name == models.CategoryOthers {
		return nil, false
	}
	e.log.WithField("category", name).Debug("AI fallback picked a category")
	return []models.Suggestion{{
		Category:    name,
		Score:       1,
		Glyph:       view.Glyph(name),
		Explanation: "Suggested by Gemini",
	}}, true
}

func isFallbackOnly(suggestions []models.Suggestion) bool {
	return len(suggestions) == 1 &&
		suggestions[0].Category == models.CategoryOthers &&
		suggestions[0].Explanation == models.NoMatchExplanation
}

func fallbackSuggestion(view *registry.View) models.Suggestion {
	return models.Suggestion{
		Category:    models.CategoryOthers,
		Score:       1,
		Glyph:       view.Glyph(models.CategoryOthers),
		Explanation: models.NoMatchExplanation,
	}
}
