package rank

import "math"

// BM25 parameters
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// bm25Scorer computes Okapi BM25 scores over one request's candidate set.
// Document frequency statistics come from the current candidates only and
// are recomputed per request; scores are comparable within one ranking pass,
// never across queries. Zero token overlap yields exactly zero.
type bm25Scorer struct {
	docs   [][]string
	df     map[string]int
	avgLen float64
}

// newBM25Scorer tokenizes nothing itself: it takes pre-tokenized documents.
func newBM25Scorer(docs [][]string) *bm25Scorer {
	df := make(map[string]int)
	var totalLen int

	for _, doc := range docs {
		totalLen += len(doc)
		seen := make(map[string]bool, len(doc))
		for _, tok := range doc {
			if !seen[tok] {
				df[tok]++
				seen[tok] = true
			}
		}
	}

	avgLen := 0.0
	if len(docs) > 0 {
		avgLen = float64(totalLen) / float64(len(docs))
	}

	return &bm25Scorer{
		docs:   docs,
		df:     df,
		avgLen: avgLen,
	}
}

// score computes the BM25 score of the query tokens against document i.
func (s *bm25Scorer) score(queryTokens []string, i int) float64 {
	doc := s.docs[i]
	if len(doc) == 0 || s.avgLen == 0 {
		return 0
	}

	tf := make(map[string]int, len(doc))
	for _, tok := range doc {
		tf[tok]++
	}

	n := float64(len(s.docs))
	lenNorm := bm25K1 * (1 - bm25B + bm25B*float64(len(doc))/s.avgLen)

	var total float64
	for _, tok := range queryTokens {
		freq := float64(tf[tok])
		if freq == 0 {
			continue
		}
		idf := math.Log(1 + (n-float64(s.df[tok])+0.5)/(float64(s.df[tok])+0.5))
		total += idf * freq * (bm25K1 + 1) / (freq + lenNorm)
	}
	return total
}
