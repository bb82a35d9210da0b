package suggester

import (
	"context"
	"fmt"
	"strings"

	"budgetlytic/expense-ai/internal/logging"
	"budgetlytic/expense-ai/internal/models"
	"budgetlytic/expense-ai/internal/registry"
	"budgetlytic/expense-ai/internal/textutils"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// matchContainment is the simple lexical tier: every keyword that occurs as
// a substring of the lowercased text scores an exact hit for its categories.
// Substring matching tolerates compound and partial receipt text at the cost
// of occasional collisions ("cab" inside "cabbage"); that trade-off is
// deliberate.
func (e *Engine) matchContainment(text string, view *registry.View, board *scoreboard) {
	lowered := strings.ToLower(text)
	for _, kw := range view.Keywords() {
		if !strings.Contains(lowered, kw) {
			continue
		}
		detail := fmt.Sprintf("%s (exact)", kw)
		for _, cat := range view.CategoriesFor(kw) {
			board.add(cat, models.TierExact, weightExact, detail)
		}
	}
}

// matchTokens is the advanced lexical tier. Each token is matched exactly
// against the keyword index, then fuzzily against every other keyword.
// Scores are additive: a token may hit multiple keywords and a keyword fans
// out to every category owning it. Tokens with no lexical hit at all go
// through semantic expansion.
func (e *Engine) matchTokens(ctx context.Context, text string, view *registry.View, board *scoreboard) {
	ratcliff := metrics.NewRatcliffObershelp()

	for _, token := range textutils.Tokenize(text) {
		matched := false

		if cats := view.CategoriesFor(token); len(cats) > 0 {
			matched = true
			detail := fmt.Sprintf("%s (exact)", token)
			for _, cat := range cats {
				board.add(cat, models.TierExact, weightExact, detail)
			}
		}

		for _, kw := range view.Keywords() {
			if kw == token {
				continue // already scored as exact
			}
			similarity := int(strutil.Similarity(token, kw, ratcliff) * 100)
			if similarity < e.opts.FuzzyThreshold {
				continue
			}
			matched = true
			detail := fmt.Sprintf("%s ~ %s (fuzzy)", token, kw)
			for _, cat := range view.CategoriesFor(kw) {
				board.add(cat, models.TierFuzzy, weightFuzzy, detail)
			}
		}

		if !matched {
			e.expandToken(ctx, token, view, board)
		}
	}
}

// expandToken bridges vocabulary gaps: neighbor labels from the relation
// service that equal an existing keyword score a weak semantic hit. Each
// (token, label) pair contributes at most once.
func (e *Engine) expandToken(ctx context.Context, token string, view *registry.View, board *scoreboard) {
	if e.neighbors == nil {
		return
	}

	seen := make(map[string]struct{})
	for _, label := range e.neighbors.Neighbors(ctx, token) {
		if _, dup := seen[label]; dup {
			continue
		}
		cats := view.CategoriesFor(label)
		if len(cats) == 0 {
			continue
		}
		seen[label] = struct{}{}

		detail := fmt.Sprintf("%s → %s (semantic)", token, label)
		for _, cat := range cats {
			board.add(cat, models.TierSemantic, weightSemantic, detail)
		}
		e.log.WithFields(
			logging.Field{Key: "token", Value: token},
			logging.Field{Key: "label", Value: label},
		).Debug("Semantic neighbor matched a keyword")
	}
}
