package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/suggest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningRepository_GetProfileMissing(t *testing.T) {
	repos := setupRepos(t)

	profile, err := repos.Learning.GetProfile(context.Background(), "unknown-user")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "unknown-user", profile.UserID)
	assert.Empty(t, profile.Weights)
	assert.Empty(t, profile.Negatives)
}

func TestLearningRepository_PutAndGetProfile(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	profile := core.NewLearnedProfile("user-1")
	profile.Weights["Dr. John Smith"] = 0.5
	profile.Negatives["Cheap Clinic"] = 1.0

	require.NoError(t, repos.Learning.PutProfile(ctx, profile))

	got, err := repos.Learning.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Weights["Dr. John Smith"])
	assert.Equal(t, 1.0, got.Negatives["Cheap Clinic"])
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestLearningRepository_Interactions(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 5; i++ {
		err := repos.Learning.AddInteraction(ctx, &core.Interaction{
			UserID:    "user-2",
			Query:     "doctor near me",
			Selected:  "Dr. John Smith",
			Rating:    i + 1,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	recent, err := repos.Learning.RecentInteractions(ctx, "user-2", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Most recent first
	assert.Equal(t, 5, recent[0].Rating)
	assert.Equal(t, 4, recent[1].Rating)
	assert.Equal(t, 3, recent[2].Rating)
}

func TestLearningRepository_InteractionsIsolatedPerUser(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Learning.AddInteraction(ctx, &core.Interaction{UserID: "alice", Query: "plumber"}))
	require.NoError(t, repos.Learning.AddInteraction(ctx, &core.Interaction{UserID: "bob", Query: "dentist"}))

	recent, err := repos.Learning.RecentInteractions(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "plumber", recent[0].Query)
}

func TestLearningRepository_InteractionTimestampDefault(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Learning.AddInteraction(ctx, &core.Interaction{UserID: "carol", Query: "electrician"}))

	recent, err := repos.Learning.RecentInteractions(ctx, "carol", 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Timestamp.IsZero())
}
