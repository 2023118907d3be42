package rank

import (
	"slices"
	"strings"
)

// Stop words filtered out during tokenization
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// NormalizeQuery lowercases, trims, and collapses whitespace in a query.
// Normalized queries feed tokenization, popularity counters, and cache
// fingerprints, so the same surface query always normalizes identically.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(query))), " ")
}

// tokenize splits text into words, lowercases, trims punctuation, and removes
// stop words.
func tokenize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// tokenSet builds a membership set from tokens.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// expandTokens appends synonym expansions for every token (and for the whole
// query string) found in the synonym table. One token may map to several
// equivalent terms; multi-word terms are tokenized in turn. Substring bases
// are visited in sorted order so the expanded token sequence is a pure
// function of its inputs.
func expandTokens(tokens []string, query string, synonyms map[string][]string) []string {
	expanded := make([]string, 0, len(tokens))
	expanded = append(expanded, tokens...)

	appendTerms := func(terms []string) {
		for _, term := range terms {
			expanded = append(expanded, tokenize(term)...)
		}
	}

	for _, tok := range tokens {
		if terms, ok := synonyms[tok]; ok {
			appendTerms(terms)
		}
	}

	lowerQuery := strings.ToLower(query)
	bases := make([]string, 0, len(synonyms))
	for base := range synonyms {
		if base != "" && strings.Contains(lowerQuery, base) {
			bases = append(bases, base)
		}
	}
	slices.Sort(bases)
	for _, base := range bases {
		appendTerms(synonyms[base])
	}

	return expanded
}

// overlaps reports whether any of the candidate's tokens appear in the set.
func overlaps(text string, set map[string]bool) bool {
	for _, tok := range tokenize(text) {
		if set[tok] {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether the lowercased text contains any of the
// lowercased terms as a substring.
func containsAnyFold(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
