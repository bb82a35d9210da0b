package textutils

import (
	"strings"
	"unicode"
)

// Irregular past/plural forms that the suffix rules below cannot reach.
// Receipt and note text is dominated by a handful of spending verbs, so a
// small table covers the practical cases.
var irregularLemmas = map[string]string{
	"bought":   "buy",
	"paid":     "pay",
	"spent":    "spend",
	"gave":     "give",
	"took":     "take",
	"went":     "go",
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"feet":     "foot",
}

// Tokenize splits text into lowercase alphabetic lemmas with stopwords
// removed. Non-alphabetic runs (digits, currency symbols, punctuation) act as
// separators and never become tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if IsStopword(field) {
			continue
		}
		tokens = append(tokens, Lemmatize(field))
	}
	return tokens
}

// Lemmatize reduces a lowercase token to a base form: irregular forms come
// from the lookup table, everything else goes through plural suffix rules.
func Lemmatize(token string) string {
	if lemma, ok := irregularLemmas[token]; ok {
		return lemma
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "shes") || strings.HasSuffix(token, "ches") || strings.HasSuffix(token, "xes"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") && !strings.HasSuffix(token, "is") && len(token) > 3:
		return token[:len(token)-1]
	}
	return token
}
