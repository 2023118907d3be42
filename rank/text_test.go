package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"lowercases", "Doctor Near Me", "doctor near me"},
		{"trims", "  plumber  ", "plumber"},
		{"collapses whitespace", "best   dentist \t nearby", "best dentist nearby"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.query))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Run("strips punctuation and stop words", func(t *testing.T) {
		tokens := tokenize("The best plumber, in (town)!")
		assert.Equal(t, []string{"best", "plumber", "town"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, tokenize(""))
	})
}

func TestExpandTokens(t *testing.T) {
	synonyms := map[string][]string{
		"doctor": {"physician", "family medic"},
	}

	t.Run("token match", func(t *testing.T) {
		expanded := expandTokens([]string{"doctor", "nearby"}, "doctor nearby", synonyms)
		assert.Contains(t, expanded, "physician")
		assert.Contains(t, expanded, "family")
		assert.Contains(t, expanded, "medic")
		assert.Contains(t, expanded, "doctor")
		assert.Contains(t, expanded, "nearby")
	})

	t.Run("no synonyms", func(t *testing.T) {
		expanded := expandTokens([]string{"plumber"}, "plumber", nil)
		assert.Equal(t, []string{"plumber"}, expanded)
	})

	t.Run("stable order across calls", func(t *testing.T) {
		multi := map[string][]string{
			"doctor near": {"physician"},
			"near me":     {"close"},
		}
		first := expandTokens([]string{"doctor", "near"}, "doctor near me", multi)
		assert.Equal(t, []string{"doctor", "near", "physician", "close"}, first)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, expandTokens([]string{"doctor", "near"}, "doctor near me", multi))
		}
	})
}

func TestContainsAnyFold(t *testing.T) {
	assert.True(t, containsAnyFold("Cheap Spam Clinic", []string{"spam"}))
	assert.True(t, containsAnyFold("emergency dentist", []string{"EMERGENCY"}))
	assert.False(t, containsAnyFold("family doctor", []string{"spam"}))
	assert.False(t, containsAnyFold("family doctor", nil))
}
