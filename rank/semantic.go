package rank

import (
	"context"
	"log/slog"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/poiesic/suggest/ai"
)

// semanticScorer embeds candidate texts and scores them against the query
// embedding. Candidate embeddings are memoized in a bounded LRU keyed by
// text, so repeated candidates across requests pay embedding cost once.
// Entities with precomputed vectors skip embedding entirely.
type semanticScorer struct {
	embedder ai.Embedder
	memo     *lru.Cache[string, []float32]
	logger   *slog.Logger
}

func newSemanticScorer(embedder ai.Embedder, memoSize int, logger *slog.Logger) (*semanticScorer, error) {
	memo, err := lru.New[string, []float32](memoSize)
	if err != nil {
		return nil, err
	}
	return &semanticScorer{
		embedder: embedder,
		memo:     memo,
		logger:   logger,
	}, nil
}

// embedQuery returns the query embedding, or an error that the caller treats
// as degradation to lexical-only scoring.
func (s *semanticScorer) embedQuery(ctx context.Context, query string) ([]float32, error) {
	return s.embedder.EmbedText(ctx, query)
}

// candidateVector returns the embedding for a candidate, preferring the
// entity's precomputed vector, then the memo, then a live embedding call.
func (s *semanticScorer) candidateVector(ctx context.Context, c *Candidate) ([]float32, error) {
	if c.Entity != nil && len(c.Entity.Vector) > 0 && c.Text == c.Entity.Text {
		return c.Entity.Vector, nil
	}

	if vector, ok := s.memo.Get(c.Text); ok {
		return vector, nil
	}

	vector, err := s.embedder.EmbedText(ctx, c.Text)
	if err != nil {
		return nil, err
	}
	s.memo.Add(c.Text, vector)
	return vector, nil
}

// cosineClipped computes cosine similarity clipped to [0, 1].
func cosineClipped(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}
