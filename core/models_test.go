package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("family doctor")
		id2 := IDFromContent("family doctor")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different IDs", func(t *testing.T) {
		id1 := IDFromContent("family doctor")
		id2 := IDFromContent("family dentist")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content", func(t *testing.T) {
		id := IDFromContent("")
		assert.Equal(t, id, IDFromContent(""))
	})
}

func TestEntityKindString(t *testing.T) {
	tests := []struct {
		kind EntityKind
		name string
	}{
		{KindMember, "member"},
		{KindCategory, "category"},
		{KindProfession, "profession"},
		{KindLocation, "location"},
		{KindSynonym, "synonym"},
		{KindBlocklist, "blacklist"},
		{KindAllowlist, "whitelist"},
		{EntityKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestKindFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for kind := KindMember; kind <= KindAllowlist; kind++ {
			assert.Equal(t, kind, KindFromString(kind.String()))
		}
	})

	t.Run("category level aliases", func(t *testing.T) {
		assert.Equal(t, KindCategory, KindFromString("subcategory"))
		assert.Equal(t, KindCategory, KindFromString("subsubcategory"))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, EntityKind(0), KindFromString("widget"))
	})
}

func TestEntityHasCoordinate(t *testing.T) {
	lat, lon := 40.7128, -74.0060

	t.Run("both present", func(t *testing.T) {
		e := &Entity{Latitude: &lat, Longitude: &lon}
		assert.True(t, e.HasCoordinate())
	})

	t.Run("only latitude", func(t *testing.T) {
		e := &Entity{Latitude: &lat}
		assert.False(t, e.HasCoordinate())
	})

	t.Run("neither", func(t *testing.T) {
		e := &Entity{}
		assert.False(t, e.HasCoordinate())
	})
}

func TestSnapshotEmpty(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		var s *Snapshot
		assert.True(t, s.Empty())
	})

	t.Run("no entities", func(t *testing.T) {
		assert.True(t, (&Snapshot{}).Empty())
	})

	t.Run("with entities", func(t *testing.T) {
		s := &Snapshot{Entities: []*Entity{{Text: "Plumbing", Kind: KindCategory}}}
		assert.False(t, s.Empty())
	})
}

func TestNewLearnedProfile(t *testing.T) {
	profile := NewLearnedProfile("user-1")
	assert.Equal(t, "user-1", profile.UserID)
	assert.NotNil(t, profile.Weights)
	assert.NotNil(t, profile.Negatives)
	assert.Empty(t, profile.Weights)
	assert.Empty(t, profile.Negatives)
}
