package rank

import (
	"strings"

	"github.com/poiesic/suggest/core"
)

// Ranking intents. Intent is advisory metadata: it selects suggestion
// templates and appears in debug output, but never hard-filters candidates.
const (
	IntentBook    = "book"
	IntentHire    = "hire"
	IntentReview  = "review"
	IntentCompare = "compare"
	IntentGeneric = "generic"
)

var intentKeywords = []struct {
	intent string
	words  []string
}{
	{IntentBook, []string{"book", "schedule", "reserve"}},
	{IntentHire, []string{"hire", "find", "near me", "nearby"}},
	{IntentReview, []string{"review", "reviews", "rating"}},
	{IntentCompare, []string{"compare", "vs", "best"}},
}

// DetectIntent classifies a query into one of the closed intent set by
// shallow keyword inspection. First matching intent wins.
func DetectIntent(query string) string {
	q := strings.ToLower(query)
	for _, entry := range intentKeywords {
		for _, word := range entry.words {
			if strings.Contains(q, word) {
				return entry.intent
			}
		}
	}
	return IntentGeneric
}

// detectCity resolves the city mentioned by a request: a stored location
// entity whose text appears in the query wins, otherwise the free-text
// location from the query context. Empty when neither is present.
func detectCity(qc *core.QueryContext, snapshot *core.Snapshot) string {
	q := strings.ToLower(qc.Query)
	for _, entity := range snapshot.Entities {
		if entity.Kind != core.KindLocation || entity.Text == "" {
			continue
		}
		if strings.Contains(q, strings.ToLower(entity.Text)) {
			return entity.Text
		}
	}
	return strings.TrimSpace(qc.Location)
}
