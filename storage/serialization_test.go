package storage

import (
	"testing"
	"time"

	"github.com/poiesic/suggest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("member:Dr. John Smith")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalEntity(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	lat, lng := 40.7128, -74.006

	tests := []struct {
		name   string
		entity *core.Entity
	}{
		{
			name: "minimal category",
			entity: &core.Entity{
				Id:         core.ID(1),
				Kind:       core.KindCategory,
				Text:       "Medical",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "full member",
			entity: &core.Entity{
				Id:            core.IDFromContent("member:Dr. John Smith"),
				Kind:          core.KindMember,
				Text:          "Dr. John Smith",
				Tags:          "doctor, cardiology",
				Location:      "New York",
				Latitude:      &lat,
				Longitude:     &lng,
				Rating:        4.8,
				ProfileURL:    "/members/dr-john-smith",
				ThumbnailURL:  "/thumbs/dr-john-smith.jpg",
				Featured:      true,
				PlanTier:      "premium",
				PriorityScore: 0.6,
				PromoBadge:    "20% off first visit",
				Hours: map[string][]core.HoursRange{
					"mon": {{Open: "09:00", Close: "17:00"}},
					"sat": {{Open: "10:00", Close: "13:00"}, {Open: "15:00", Close: "18:00"}},
				},
				Terms:      []string{"great doctor", "very professional"},
				Vector:     []float32{0.1, -0.2, 0.3},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "synonym rule",
			entity: &core.Entity{
				Id:         core.ID(7),
				Kind:       core.KindSynonym,
				Text:       "doctor",
				Terms:      []string{"physician", "medic"},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalEntity(tt.entity)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalEntity(data)
			require.NoError(t, err)
			assert.Equal(t, tt.entity, decoded)
		})
	}
}

func TestUnmarshalEntity_Truncated(t *testing.T) {
	entity := &core.Entity{
		Id:   core.ID(3),
		Kind: core.KindProfession,
		Text: "Electrician",
	}
	data := MarshalEntity(entity)

	_, err := UnmarshalEntity(data[:len(data)/2])
	assert.Error(t, err)
}

func TestMarshalUnmarshalProfile(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("empty profile", func(t *testing.T) {
		profile := core.NewLearnedProfile("user-1")
		decoded, err := UnmarshalProfile(MarshalProfile(profile))
		require.NoError(t, err)
		assert.Equal(t, "user-1", decoded.UserID)
		assert.Empty(t, decoded.Weights)
		assert.Empty(t, decoded.Negatives)
	})

	t.Run("populated profile", func(t *testing.T) {
		profile := &core.LearnedProfile{
			UserID:    "user-2",
			Weights:   map[string]float64{"Dr. John Smith": 0.9, "City Dental": 0.4},
			Negatives: map[string]float64{"Cheap Clinic": 1.5},
			UpdatedAt: now,
		}
		decoded, err := UnmarshalProfile(MarshalProfile(profile))
		require.NoError(t, err)
		assert.Equal(t, profile, decoded)
	})
}

func TestMarshalUnmarshalInteraction(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	interaction := &core.Interaction{
		UserID:      "user-3",
		Query:       "doctor near me",
		Suggestions: []string{"Dr. John Smith", "Find doctors in New York"},
		Selected:    "Dr. John Smith",
		Rating:      5,
		Location:    "New York",
		Variant:     "B",
		Timestamp:   now,
	}

	decoded, err := UnmarshalInteraction(MarshalInteraction(interaction))
	require.NoError(t, err)
	assert.Equal(t, interaction, decoded)
}

func TestMarshalUnmarshalRankedResult(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	dist := 2.4

	result := &core.RankedResult{
		OriginalQuery: "doctor near me",
		Suggestions:   []string{"Dr. John Smith", "Find doctors in New York"},
		Cards: []core.MemberCard{
			{
				Title:        "Dr. John Smith",
				MemberID:     core.IDFromContent("member:Dr. John Smith"),
				ProfileURL:   "/members/dr-john-smith",
				ThumbnailURL: "/thumbs/dr-john-smith.jpg",
				Rating:       4.8,
				Location:     "New York",
				DistanceKm:   &dist,
				PromoBadge:   "20% off first visit",
				Featured:     true,
			},
		},
		UserID:    "user-4",
		Timestamp: now,
		Debug: &core.DebugInfo{
			Intent: "findDoctor",
			City:   "New York",
			Candidates: []core.DebugCandidate{
				{Text: "Dr. John Smith", Kind: "member", Score: 0.91, Lexical: 0.8, Semantic: 0.9, Boost: 0.25, DistanceKm: &dist},
			},
		},
	}

	decoded, err := UnmarshalRankedResult(MarshalRankedResult(result))
	require.NoError(t, err)
	assert.Equal(t, result, decoded)

	// CacheHit is per-request state and never enters the stored form.
	result.CacheHit = true
	decoded, err = UnmarshalRankedResult(MarshalRankedResult(result))
	require.NoError(t, err)
	assert.False(t, decoded.CacheHit)
}

func TestMarshalUnmarshalCount(t *testing.T) {
	for _, count := range []uint64{0, 1, 300, 1 << 40} {
		data := MarshalCount(count)
		decoded, err := UnmarshalCount(data)
		require.NoError(t, err)
		assert.Equal(t, count, decoded)
	}
}
