package rank

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/suggest/ai"
	"github.com/poiesic/suggest/core"
)

// Ranker runs the full scoring pipeline for one query: candidate
// generation, lexical and semantic scoring, signal fusion with business
// rules, and rendering of suggestion strings and member cards.
//
// A Ranker is pure with respect to persistent state: it reads the snapshot,
// learned profile, and popularity counters it is handed and mutates nothing.
type Ranker struct {
	embedder ai.Embedder
	semantic *semanticScorer
	config   Config
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithConfig replaces the default fusion configuration.
func WithConfig(config Config) Option {
	return func(r *Ranker) error {
		r.config = config
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(embedder ai.Embedder, opts ...Option) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Ranker{
		embedder: embedder,
		config:   DefaultConfig(),
		logger:   slog.Default().With("component", "ranker"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	semantic, err := newSemanticScorer(embedder, r.config.MemoSize, r.logger)
	if err != nil {
		return nil, err
	}
	r.semantic = semantic

	return r, nil
}

// Config returns the active configuration.
func (r *Ranker) Config() Config {
	return r.config
}

// Rank scores the snapshot against the query context and returns rendered
// suggestions and cards. Identical inputs produce identical output ordering.
func (r *Ranker) Rank(ctx context.Context, qc *core.QueryContext, snapshot *core.Snapshot, profile *core.LearnedProfile, popularity map[string]uint64) (*core.RankedResult, error) {
	return r.RankWithMonitor(ctx, qc, snapshot, profile, popularity, nil)
}

// RankWithMonitor is Rank with observation hooks at each pipeline stage.
func (r *Ranker) RankWithMonitor(ctx context.Context, qc *core.QueryContext, snapshot *core.Snapshot, profile *core.LearnedProfile, popularity map[string]uint64, monitor RankMonitor) (*core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if err := core.ValidateQueryContext(qc); err != nil {
		return nil, err
	}
	if profile == nil {
		profile = core.NewLearnedProfile(qc.UserID)
	}

	query := NormalizeQuery(qc.Query)
	monitor.Start(query)

	intent := DetectIntent(query)
	city := detectCity(qc, snapshot)

	candidates := Generate(qc, snapshot)
	monitor.AfterCandidateGeneration(candidates)
	if len(candidates) == 0 {
		return r.coldStart(qc, snapshot, popularity, intent, city, false, monitor), nil
	}

	queryTokens := expandTokens(tokenize(query), query, snapshot.Synonyms)

	// Lexical pass
	docs := make([][]string, len(candidates))
	for i, c := range candidates {
		docs[i] = tokenize(c.Text)
	}
	bm25 := newBM25Scorer(docs)
	for i, c := range candidates {
		c.Lexical = bm25.score(queryTokens, i)
	}
	normalizeLexical(candidates)

	// Semantic pass. Embedder failure degrades the request to lexical-only
	// scoring; it never fails the request.
	degraded := false
	queryVector, err := r.semantic.embedQuery(ctx, strings.Join(queryTokens, " "))
	if err != nil {
		r.logger.Warn("embedder unavailable, scoring lexical-only", "err", err)
		monitor.Degraded(err)
		degraded = true
	} else {
		for _, c := range candidates {
			vector, err := r.semantic.candidateVector(ctx, c)
			if err != nil {
				// A single bad candidate is skipped, not fatal
				r.logger.Debug("candidate embedding failed", "text", c.Text, "err", err)
				continue
			}
			c.Semantic = cosineClipped(queryVector, vector)
		}
	}

	// Fusion
	fused := candidates[:0]
	for _, c := range candidates {
		if r.fuse(c, qc, city, profile, popularity, monitor) {
			fused = append(fused, c)
		}
	}
	sortCandidates(fused)

	// Sorted descending, so everything below the score floor is a suffix
	for len(fused) > 0 && fused[len(fused)-1].Final < r.config.MinScore {
		fused = fused[:len(fused)-1]
	}
	monitor.AfterScoring(fused)

	if len(fused) == 0 {
		return r.coldStart(qc, snapshot, popularity, intent, city, degraded, monitor), nil
	}

	result := r.render(fused, qc, city, intent)
	if qc.Debug {
		result.Debug = debugInfo(fused, intent, city, degraded, false)
	}
	monitor.Finish(result)
	return result, nil
}

// render builds the final suggestion strings and member cards from the
// sorted candidate list.
func (r *Ranker) render(sorted []*Candidate, qc *core.QueryContext, city, intent string) *core.RankedResult {
	topK := r.config.TopK
	top := sorted
	if len(top) > topK {
		top = top[:topK]
	}

	var suggestions []string
	seen := make(map[string]bool)
	appendSuggestion := func(s string) {
		key := strings.ToLower(s)
		if !seen[key] && len(suggestions) < topK {
			seen[key] = true
			suggestions = append(suggestions, s)
		}
	}

	var cards []core.MemberCard
	seenCards := make(map[core.ID]bool)
	for _, c := range top {
		if c.Synthetic {
			appendSuggestion(c.Text)
		} else {
			for _, s := range renderTemplates(c.Text, city, intent) {
				appendSuggestion(s)
			}
		}

		entity := c.Entity
		if entity != nil && entity.Kind == core.KindMember && (entity.ProfileURL != "" || entity.Id != 0) && !seenCards[entity.Id] {
			seenCards[entity.Id] = true
			cards = append(cards, core.MemberCard{
				Title:        entity.Text,
				MemberID:     entity.Id,
				ProfileURL:   entity.ProfileURL,
				ThumbnailURL: entity.ThumbnailURL,
				Rating:       entity.Rating,
				Location:     entity.Location,
				DistanceKm:   roundedKm(c.DistanceKm),
				PromoBadge:   entity.PromoBadge,
				Featured:     entity.Featured,
			})
		}
	}

	return &core.RankedResult{
		OriginalQuery: qc.Query,
		Suggestions:   suggestions,
		Cards:         cards,
		UserID:        qc.UserID,
		Timestamp:     r.config.nowFn().UTC(),
	}
}

// coldStart builds the popular-defaults result: category and profession
// texts ordered by served-suggestion counters, not personalized and not
// geo-filtered. The only path guaranteed to return a non-empty list.
func (r *Ranker) coldStart(qc *core.QueryContext, snapshot *core.Snapshot, popularity map[string]uint64, intent, city string, degraded bool, monitor RankMonitor) *core.RankedResult {
	suggestions := ColdStartSuggestions(snapshot, popularity, r.config.TopK)
	monitor.ColdStart(suggestions)

	result := &core.RankedResult{
		OriginalQuery: qc.Query,
		Suggestions:   suggestions,
		UserID:        qc.UserID,
		Timestamp:     r.config.nowFn().UTC(),
	}
	if qc.Debug {
		result.Debug = debugInfo(nil, intent, city, degraded, true)
	}
	monitor.Finish(result)
	return result
}

// fallbackSuggestion is returned when no site data exists at all.
const fallbackSuggestion = "Popular services near you"

// ColdStartSuggestions returns up to k category/profession texts ordered by
// popularity counter descending, ties broken by text ascending.
func ColdStartSuggestions(snapshot *core.Snapshot, popularity map[string]uint64, k int) []string {
	var texts []string
	if snapshot != nil {
		for _, entity := range snapshot.Entities {
			if entity.Kind == core.KindCategory || entity.Kind == core.KindProfession {
				if entity.Text != "" {
					texts = append(texts, entity.Text)
				}
			}
		}
	}

	slices.SortFunc(texts, func(a, b string) int {
		pa, pb := popularity[strings.ToLower(a)], popularity[strings.ToLower(b)]
		if pa != pb {
			if pa > pb {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})

	if len(texts) > k {
		texts = texts[:k]
	}
	if len(texts) == 0 {
		texts = []string{fallbackSuggestion}
	}
	return texts
}

// debugInfo snapshots the top candidates' raw per-signal scores. Read-only
// over the candidate list.
func debugInfo(sorted []*Candidate, intent, city string, degraded, coldStart bool) *core.DebugInfo {
	info := &core.DebugInfo{
		Intent:    intent,
		City:      city,
		Degraded:  degraded,
		ColdStart: coldStart,
	}

	top := sorted
	if len(top) > 10 {
		top = top[:10]
	}
	for _, c := range top {
		kind := "synthetic"
		if c.Entity != nil {
			kind = c.Kind.String()
		}
		info.Candidates = append(info.Candidates, core.DebugCandidate{
			Text:       c.Text,
			Kind:       kind,
			Score:      c.Final,
			Lexical:    c.LexNorm,
			Semantic:   c.Semantic,
			Boost:      c.HistoryBoost + c.GeoBoost + c.BusinessBoost + c.PersonalBoost - c.NegativePenalty,
			DistanceKm: c.DistanceKm,
		})
	}
	return info
}

// roundedKm rounds a distance to two decimals for display.
func roundedKm(km *float64) *float64 {
	if km == nil {
		return nil
	}
	rounded := math.Round(*km*100) / 100
	return &rounded
}

// Fingerprint derives the stable cache key for a request: normalized query,
// user, coordinate rounded to four decimals, detected intent, radius, and
// the site-data version. Any site-data write changes the version and thus
// every fingerprint.
func Fingerprint(qc *core.QueryContext, radiusKm float64, dataVersion uint64) string {
	var lat, lon string
	if qc.Latitude != nil {
		lat = fmt.Sprintf("%.4f", *qc.Latitude)
	}
	if qc.Longitude != nil {
		lon = fmt.Sprintf("%.4f", *qc.Longitude)
	}

	payload := strings.Join([]string{
		NormalizeQuery(qc.Query),
		qc.UserID,
		lat,
		lon,
		DetectIntent(qc.Query),
		fmt.Sprintf("%g", radiusKm),
		fmt.Sprintf("%d", dataVersion),
	}, "\x1f")

	h, _ := blake2b.New(16, nil)
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
