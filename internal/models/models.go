// Package models provides the data structures used throughout the application.
package models

// CategoryConfig represents a category definition as it appears in the
// categories YAML file: a unique name, an explicit priority used as the
// ranking tie-break (lower wins), an optional display glyph, and the list
// of lowercase keywords the category owns.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Priority int      `yaml:"priority,omitempty"`
	Glyph    string   `yaml:"glyph,omitempty"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// MatchTier identifies the matching strategy that produced a piece of evidence.
type MatchTier string

const (
	TierExact     MatchTier = "EXACT"
	TierFuzzy     MatchTier = "FUZZY"
	TierSemantic  MatchTier = "SEMANTIC"
	TierHeuristic MatchTier = "HEURISTIC"
)

// MatchEvidence records a single score contribution for a category during one
// suggestion run. Evidence is accumulated per run and never persisted.
type MatchEvidence struct {
	Category string
	Tier     MatchTier
	Weight   int
	Detail   string
}

// Suggestion is the externally visible output unit of the engine.
type Suggestion struct {
	Category    string `json:"category" csv:"category"`
	Score       int    `json:"score" csv:"score"`
	Glyph       string `json:"glyph,omitempty" csv:"glyph"`
	Explanation string `json:"explanation" csv:"explanation"`
}
