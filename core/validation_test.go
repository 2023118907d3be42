package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQueryContext(t *testing.T) {
	lat, lon := 40.0, -74.0

	t.Run("valid", func(t *testing.T) {
		qc := &QueryContext{Query: "doctor near me", UserID: "u1"}
		assert.NoError(t, ValidateQueryContext(qc))
	})

	t.Run("valid with coordinate", func(t *testing.T) {
		qc := &QueryContext{Query: "doctor", Latitude: &lat, Longitude: &lon}
		assert.NoError(t, ValidateQueryContext(qc))
	})

	t.Run("nil context", func(t *testing.T) {
		err := ValidateQueryContext(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("empty query", func(t *testing.T) {
		err := ValidateQueryContext(&QueryContext{Query: ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("whitespace query", func(t *testing.T) {
		err := ValidateQueryContext(&QueryContext{Query: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("partial coordinate", func(t *testing.T) {
		err := ValidateQueryContext(&QueryContext{Query: "doctor", Latitude: &lat})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPartialCoordinate)
	})

	t.Run("anonymous user is valid", func(t *testing.T) {
		assert.NoError(t, ValidateQueryContext(&QueryContext{Query: "doctor"}))
	})
}

func TestValidateEntity(t *testing.T) {
	lat := 40.0

	t.Run("valid member", func(t *testing.T) {
		e := &Entity{Kind: KindMember, Text: "Dr. John Smith"}
		assert.NoError(t, ValidateEntity(e))
	})

	t.Run("nil entity", func(t *testing.T) {
		err := ValidateEntity(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntity)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateEntity(&Entity{Kind: KindCategory})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyEntityText)
	})

	t.Run("invalid kind", func(t *testing.T) {
		err := ValidateEntity(&Entity{Kind: 0, Text: "Plumbers"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntityKind)
	})

	t.Run("partial coordinate", func(t *testing.T) {
		err := ValidateEntity(&Entity{Kind: KindMember, Text: "Shop", Latitude: &lat})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPartialCoordinate)
	})
}

func TestValidateFeedback(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateFeedback("doctor", "Top-rated doctor near you", 5))
	})

	t.Run("empty query", func(t *testing.T) {
		err := ValidateFeedback("", "suggestion", 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("empty suggestion", func(t *testing.T) {
		err := ValidateFeedback("doctor", " ", 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptySuggestion)
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			err := ValidateFeedback("doctor", "suggestion", rating)
			require.Error(t, err, "rating %d", rating)
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
		for rating := 1; rating <= 5; rating++ {
			assert.NoError(t, ValidateFeedback("doctor", "suggestion", rating))
		}
	})
}
