package learning

import (
	"context"
	"sync"
	"testing"

	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecorder(t *testing.T) (*Recorder, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	recorder, err := NewRecorder(repos.Learning, WithAnalytics(repos.Analytics))
	require.NoError(t, err)
	return recorder, repos
}

func TestNewRecorder_RequiresLearningRepo(t *testing.T) {
	_, err := NewRecorder(nil)
	assert.ErrorIs(t, err, ErrLearningRepoRequired)
}

func TestRecordFeedback_ValidatesInput(t *testing.T) {
	recorder, _ := setupRecorder(t)
	ctx := context.Background()

	err := recorder.RecordFeedback(ctx, Feedback{UserID: "u1", Query: "", Suggestion: "s", Rating: 5})
	assert.ErrorIs(t, err, core.ErrInvalidFeedback)

	err = recorder.RecordFeedback(ctx, Feedback{UserID: "u1", Query: "q", Suggestion: "s", Rating: 0})
	assert.ErrorIs(t, err, core.ErrInvalidRating)

	err = recorder.RecordFeedback(ctx, Feedback{UserID: "u1", Query: "q", Suggestion: "  ", Rating: 5})
	assert.ErrorIs(t, err, core.ErrEmptySuggestion)
}

func TestRecordFeedback_PositiveReinforcement(t *testing.T) {
	recorder, repos := setupRecorder(t)
	ctx := context.Background()

	err := recorder.RecordFeedback(ctx, Feedback{
		UserID:     "u1",
		Query:      "find a plumber",
		Suggestion: "Emergency Plumber Services",
		Rating:     5,
	})
	require.NoError(t, err)

	profile, err := repos.Learning.GetProfile(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 5.0, profile.Weights["emergency plumber services"])
	// "plumber" appears in both query and suggestion
	assert.Equal(t, 5.0, profile.Weights["plumber"])
	assert.NotContains(t, profile.Weights, "find")
	assert.Empty(t, profile.Negatives)

	counts, err := repos.Analytics.SuggestionCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counts["emergency plumber services"])
}

func TestRecordFeedback_NegativeSuppression(t *testing.T) {
	recorder, repos := setupRecorder(t)
	ctx := context.Background()

	err := recorder.RecordFeedback(ctx, Feedback{
		UserID: "u1", Query: "plumber", Suggestion: "Bad Plumber Co", Rating: 1,
	})
	require.NoError(t, err)
	err = recorder.RecordFeedback(ctx, Feedback{
		UserID: "u1", Query: "plumber", Suggestion: "Bad Plumber Co", Rating: 2,
	})
	require.NoError(t, err)

	profile, err := repos.Learning.GetProfile(ctx, "u1")
	require.NoError(t, err)

	// 1 -> +2, 2 -> +1
	assert.Equal(t, 3.0, profile.Negatives["bad plumber co"])
	assert.Empty(t, profile.Weights)

	counts, err := repos.Analytics.SuggestionCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRecordFeedback_NeutralLogsOnly(t *testing.T) {
	recorder, repos := setupRecorder(t)
	ctx := context.Background()

	err := recorder.RecordFeedback(ctx, Feedback{
		UserID: "u1", Query: "plumber", Suggestion: "Some Plumber", Rating: 3,
	})
	require.NoError(t, err)

	profile, err := repos.Learning.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, profile.Weights)
	assert.Empty(t, profile.Negatives)

	interactions, err := repos.Learning.RecentInteractions(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, "Some Plumber", interactions[0].Selected)
	assert.Equal(t, 3, interactions[0].Rating)
	assert.False(t, interactions[0].Timestamp.IsZero())
}

func TestRecordFeedback_RecordsVariantAndLocation(t *testing.T) {
	recorder, repos := setupRecorder(t)
	ctx := context.Background()

	err := recorder.RecordFeedback(ctx, Feedback{
		UserID:     "u1",
		Query:      "doctor",
		Suggestion: "Dr. Smith",
		Rating:     4,
		Location:   "New York",
		Variant:    "b",
	})
	require.NoError(t, err)

	interactions, err := repos.Learning.RecentInteractions(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, "New York", interactions[0].Location)
	assert.Equal(t, "b", interactions[0].Variant)
}

func TestRecordFeedback_ConcurrentSameUser(t *testing.T) {
	recorder, repos := setupRecorder(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := recorder.RecordFeedback(ctx, Feedback{
				UserID: "u1", Query: "plumber", Suggestion: "Ace Plumbing", Rating: 4,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	profile, err := repos.Learning.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, float64(4*workers), profile.Weights["ace plumbing"])
}

func TestRecordFeedback_WithoutAnalytics(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	recorder, err := NewRecorder(repos.Learning)
	require.NoError(t, err)

	err = recorder.RecordFeedback(context.Background(), Feedback{
		UserID: "u1", Query: "plumber", Suggestion: "Ace Plumbing", Rating: 5,
	})
	assert.NoError(t, err)
}
