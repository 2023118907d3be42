package rank

import (
	"strings"

	"github.com/poiesic/suggest/core"
)

// Candidate is one suggestion/entity pairing considered for ranking. It
// carries the per-signal scoring bag and lives only for one ranking pass.
type Candidate struct {
	Text string
	Kind core.EntityKind

	// Entity is the source entity, nil for synthetic template candidates.
	Entity *core.Entity

	// Synthetic candidates are already natural-language suggestions and are
	// rendered verbatim instead of through intent templates.
	Synthetic bool

	// Scoring bag, filled during one ranking pass.
	Lexical         float64
	LexNorm         float64
	Semantic        float64
	HistoryBoost    float64
	GeoBoost        float64
	BusinessBoost   float64
	PersonalBoost   float64
	NegativePenalty float64
	DistanceKm      *float64
	Final           float64
}

// Generate expands a query context and site-data snapshot into the
// deduplicated candidate set. Pure function of its inputs: an empty snapshot
// yields an empty set, which triggers the cold-start fallback downstream.
//
// Candidates are kept when their text overlaps the synonym-expanded query
// token set. Blocklisted texts are excluded unconditionally; allowlisted
// texts bypass the overlap filter.
func Generate(qc *core.QueryContext, snapshot *core.Snapshot) []*Candidate {
	if snapshot.Empty() {
		return nil
	}

	query := NormalizeQuery(qc.Query)
	expanded := tokenSet(expandTokens(tokenize(query), query, snapshot.Synonyms))

	keep := func(text string) bool {
		if text == "" {
			return false
		}
		if containsAnyFold(text, snapshot.Blocklist) {
			return false
		}
		if containsAnyFold(text, snapshot.Allowlist) {
			return true
		}
		return overlaps(text, expanded)
	}

	var candidates []*Candidate
	var matchedBases []string

	add := func(text string, entity *core.Entity) {
		if !keep(text) {
			return
		}
		candidates = append(candidates, &Candidate{
			Text:   strings.TrimSpace(text),
			Kind:   entity.Kind,
			Entity: entity,
		})
		if entity.Kind == core.KindCategory || entity.Kind == core.KindProfession {
			matchedBases = append(matchedBases, strings.TrimSpace(text))
		}
	}

	for _, entity := range snapshot.Entities {
		switch entity.Kind {
		case core.KindCategory:
			// Category text carries up to three " - " separated levels that
			// expand to one candidate per prefix.
			for _, level := range categoryLevels(entity.Text) {
				add(level, entity)
			}
		case core.KindMember:
			add(entity.Text, entity)
			for _, tag := range strings.Split(entity.Tags, ",") {
				add(strings.TrimSpace(tag), entity)
			}
			for _, review := range entity.Terms {
				add(review, entity)
			}
		default:
			add(entity.Text, entity)
		}
	}

	// Synthetic template candidates seeded from matched categories/professions
	for _, base := range matchedBases {
		candidates = append(candidates, &Candidate{
			Text:      "Top-rated " + base + " near you",
			Synthetic: true,
		})
	}

	return dedupeCandidates(candidates)
}

// categoryLevels expands "Top - Sub - SubSub" into cumulative level prefixes.
func categoryLevels(text string) []string {
	parts := strings.Split(text, " - ")
	levels := make([]string, 0, len(parts))
	var prefix string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if prefix == "" {
			prefix = part
		} else {
			prefix = prefix + " - " + part
		}
		levels = append(levels, prefix)
	}
	return levels
}

// dedupeCandidates removes case-insensitive duplicate texts, first wins.
func dedupeCandidates(candidates []*Candidate) []*Candidate {
	seen := make(map[string]bool, len(candidates))
	unique := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}
	return unique
}
