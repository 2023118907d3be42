package rank

import (
	"testing"

	"github.com/poiesic/suggest/core"
	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"book a dentist appointment", IntentBook},
		{"schedule cleaning", IntentBook},
		{"doctor near me", IntentHire},
		{"find electricians", IntentHire},
		{"plumber reviews", IntentReview},
		{"compare lawyers", IntentCompare},
		{"best pizza", IntentCompare},
		{"dentist", IntentGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.query))
		})
	}
}

func TestDetectCity(t *testing.T) {
	snapshot := &core.Snapshot{
		Entities: []*core.Entity{
			{Kind: core.KindLocation, Text: "Austin"},
			{Kind: core.KindCategory, Text: "Medical"},
		},
	}

	t.Run("location entity in query wins", func(t *testing.T) {
		qc := &core.QueryContext{Query: "plumber in austin", Location: "Dallas"}
		assert.Equal(t, "Austin", detectCity(qc, snapshot))
	})

	t.Run("falls back to context location", func(t *testing.T) {
		qc := &core.QueryContext{Query: "plumber", Location: "Dallas"}
		assert.Equal(t, "Dallas", detectCity(qc, snapshot))
	})

	t.Run("empty when nothing known", func(t *testing.T) {
		qc := &core.QueryContext{Query: "plumber"}
		assert.Empty(t, detectCity(qc, snapshot))
	})
}

func TestRenderTemplates(t *testing.T) {
	t.Run("substitutes base and city", func(t *testing.T) {
		rendered := renderTemplates("plumber", "Austin", IntentBook)
		assert.Equal(t, []string{
			"Book plumber in Austin",
			"Schedule with plumber near you",
			"Reserve plumber today",
		}, rendered)
	})

	t.Run("city placeholder when unresolved", func(t *testing.T) {
		rendered := renderTemplates("plumber", "", IntentCompare)
		assert.Equal(t, "Compare plumber in [City]", rendered[0])
	})

	t.Run("unknown intent uses generic templates", func(t *testing.T) {
		rendered := renderTemplates("plumber", "Austin", "nonsense")
		assert.Equal(t, "Top-rated plumber near you", rendered[0])
	})
}
