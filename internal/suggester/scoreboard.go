package suggester

import (
	"sort"
	"strings"

	"budgetlytic/expense-ai/internal/models"
	"budgetlytic/expense-ai/internal/registry"
)

// scoreboard accumulates per-category scores and the evidence behind them
// during a single suggestion run.
type scoreboard struct {
	scores   map[string]int
	evidence map[string][]models.MatchEvidence
}

func newScoreboard() *scoreboard {
	return &scoreboard{
		scores:   make(map[string]int),
		evidence: make(map[string][]models.MatchEvidence),
	}
}

func (b *scoreboard) add(category string, tier models.MatchTier, weight int, detail string) {
	b.scores[category] += weight
	b.evidence[category] = append(b.evidence[category], models.MatchEvidence{
		Category: category,
		Tier:     tier,
		Weight:   weight,
		Detail:   detail,
	})
}

// rank produces the final ordered suggestion list: descending score,
// ties broken by ascending registry rank, near-duplicate categories
// collapsed by base key, truncated to topN. Candidates are collected in
// registry order so the stable sort never depends on map iteration.
func (b *scoreboard) rank(view *registry.View, topN int) []models.Suggestion {
	if len(b.scores) == 0 {
		return []models.Suggestion{fallbackSuggestion(view)}
	}

	type candidate struct {
		name  string
		score int
		rank  int
	}

	candidates := make([]candidate, 0, len(b.scores))
	for _, name := range view.Names() {
		if score, ok := b.scores[name]; ok {
			candidates = append(candidates, candidate{name: name, score: score, rank: view.Rank(name)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].rank < candidates[j].rank
	})

	suggestions := make([]models.Suggestion, 0, topN)
	emitted := make(map[string]struct{})
	for _, c := range candidates {
		base := baseKey(c.name)
		if _, dup := emitted[base]; dup {
			continue
		}
		emitted[base] = struct{}{}

		suggestions = append(suggestions, models.Suggestion{
			Category:    c.name,
			Score:       c.score,
			Glyph:       view.Glyph(c.name),
			Explanation: b.explanation(c.name),
		})
		if len(suggestions) >= topN {
			break
		}
	}
	return suggestions
}

// explanation concatenates a category's evidence details in the order they
// were accumulated.
func (b *scoreboard) explanation(category string) string {
	evidence := b.evidence[category]
	if len(evidence) == 0 {
		return models.NoMatchExplanation
	}
	details := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		details = append(details, ev.Detail)
	}
	return strings.Join(details, ", ")
}

// baseKey derives the deduplication identity of a category: the portion of
// the name before any "&" qualifier, case-folded and trimmed. "Food & Dining"
// and "Food & Groceries" share the base key "food".
func baseKey(name string) string {
	base, _, _ := strings.Cut(strings.ToLower(name), "&")
	return strings.TrimSpace(base)
}
