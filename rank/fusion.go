package rank

import (
	"slices"
	"strings"
	"time"

	"github.com/poiesic/suggest/core"
)

// normalizeLexical rescales lexical scores into [0, 1] by min-max over the
// current candidate set so they fuse on the same order of magnitude as
// semantic similarity. A constant nonzero set (every candidate matched
// equally well, including the single-candidate case) maps to one; only a
// zero-overlap set maps to zero.
func normalizeLexical(candidates []*Candidate) {
	if len(candidates) == 0 {
		return
	}

	minScore, maxScore := candidates[0].Lexical, candidates[0].Lexical
	for _, c := range candidates[1:] {
		if c.Lexical < minScore {
			minScore = c.Lexical
		}
		if c.Lexical > maxScore {
			maxScore = c.Lexical
		}
	}

	spread := maxScore - minScore
	for _, c := range candidates {
		switch {
		case spread > 0:
			c.LexNorm = (c.Lexical - minScore) / spread
		case c.Lexical > 0:
			c.LexNorm = 1
		default:
			c.LexNorm = 0
		}
	}
}

// fuse computes every boost for one candidate and its final score. Returns
// false when the candidate is hard-excluded by the radius filter.
func (r *Ranker) fuse(c *Candidate, qc *core.QueryContext, city string, profile *core.LearnedProfile, popularity map[string]uint64, mon RankMonitor) bool {
	cfg := &r.config
	lowerText := strings.ToLower(c.Text)

	// History boost, linearly recency-weighted: the most recent entry
	// carries full weight, older entries decay toward zero.
	n := len(qc.History)
	for i, h := range qc.History {
		if h != "" && strings.Contains(lowerText, strings.ToLower(h)) {
			c.HistoryBoost += cfg.HistoryBoost * float64(i+1) / float64(n)
		}
	}

	entity := c.Entity
	if entity != nil {
		if entity.Rating >= cfg.HighRatingMin {
			c.BusinessBoost += cfg.HighRatingBoost
		}
		if city != "" && entity.Location != "" &&
			strings.Contains(strings.ToLower(entity.Location), strings.ToLower(city)) {
			c.GeoBoost += cfg.LocationBoost
		}

		// Distance signals apply only when both sides have a coordinate;
		// partial coordinates skip geo entirely.
		if qc.HasCoordinate() && entity.HasCoordinate() {
			distance := haversineKm(*qc.Latitude, *qc.Longitude, *entity.Latitude, *entity.Longitude)
			c.DistanceKm = &distance

			if cfg.RadiusKm > 0 && distance > cfg.RadiusKm {
				mon.GeoExcluded(c, distance)
				return false
			}
			if distance <= cfg.NearKm {
				c.GeoBoost += cfg.NearBoost
			} else if distance <= cfg.MidKm {
				c.GeoBoost += cfg.MidBoost
			}
		} else if qc.HasCoordinate() && entity.Location != "" {
			c.GeoBoost += keywordLocationBoost(entity.Location)
		}

		// Business rules
		if entity.Featured {
			c.BusinessBoost += cfg.FeaturedBoost
		}
		if planTiers[strings.ToLower(entity.PlanTier)] {
			c.BusinessBoost += cfg.PlanTierBoost
		}
		c.BusinessBoost += entity.PriorityScore * cfg.PriorityWeight
		if isOpenNow(entity.Hours, cfg.nowFn()) {
			c.BusinessBoost += cfg.OpenNowBoost
		}
		if entity.PromoBadge != "" {
			c.BusinessBoost += cfg.PromoBoost
		}
	}

	// Personalization: learned per-user weights, then the global
	// successful-suggestion signal at half strength.
	if w, ok := profile.Weights[lowerText]; ok {
		c.PersonalBoost += cfg.LearnedBoost * w / 10.0
	}
	if popularity[lowerText] > 0 {
		c.PersonalBoost += cfg.LearnedBoost * 0.5
	}

	if _, ok := profile.Negatives[lowerText]; ok {
		c.NegativePenalty = cfg.NegativePenalty
	}

	c.Final = cfg.SemanticWeight*c.Semantic + cfg.LexicalWeight*c.LexNorm +
		c.PersonalBoost + c.HistoryBoost + c.GeoBoost + c.BusinessBoost -
		c.NegativePenalty
	return true
}

// sortCandidates orders by final score descending; equal scores break ties
// by higher rating, then ascending entity ID, keeping output deterministic.
func sortCandidates(candidates []*Candidate) {
	slices.SortStableFunc(candidates, func(a, b *Candidate) int {
		if a.Final != b.Final {
			if a.Final > b.Final {
				return -1
			}
			return 1
		}

		ar, br := candidateRating(a), candidateRating(b)
		if ar != br {
			if ar > br {
				return -1
			}
			return 1
		}

		ai, bi := candidateID(a), candidateID(b)
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
		return 0
	})
}

func candidateRating(c *Candidate) float64 {
	if c.Entity == nil {
		return 0
	}
	return c.Entity.Rating
}

func candidateID(c *Candidate) core.ID {
	if c.Entity == nil {
		return 0
	}
	return c.Entity.Id
}

var weekdayKeys = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// isOpenNow reports whether now falls inside the declared hours for the
// current weekday. "HH:MM" strings compare correctly lexicographically.
func isOpenNow(hours map[string][]core.HoursRange, now time.Time) bool {
	if len(hours) == 0 {
		return false
	}

	current := now.Format("15:04")
	for _, interval := range hours[weekdayKeys[now.Weekday()]] {
		if interval.Open <= current && current <= interval.Close {
			return true
		}
	}
	return false
}
