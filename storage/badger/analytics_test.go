package badger

import (
	"context"
	"testing"

	"github.com/poiesic/suggest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_Counters(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Analytics.IncrQueryCount(ctx, "doctor near me"))
	}
	require.NoError(t, repos.Analytics.IncrQueryCount(ctx, "plumber"))

	top, err := repos.Analytics.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, core.CountedItem{Text: "doctor near me", Count: 3}, top[0])
	assert.Equal(t, core.CountedItem{Text: "plumber", Count: 1}, top[1])
}

func TestAnalyticsRepository_TopOrderAndTies(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "zebra clinic"))
	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "alpha clinic"))
	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "beta clinic"))
	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "beta clinic"))

	top, err := repos.Analytics.TopSuggestions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "beta clinic", top[0].Text)
	// Equal counts break ties alphabetically
	assert.Equal(t, "alpha clinic", top[1].Text)
}

func TestAnalyticsRepository_SuggestionCounts(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "Dr. John Smith"))
	require.NoError(t, repos.Analytics.IncrSuggestionCount(ctx, "Dr. John Smith"))

	counts, err := repos.Analytics.SuggestionCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), counts["Dr. John Smith"])
}

func TestAnalyticsRepository_EmptyTop(t *testing.T) {
	repos := setupRepos(t)

	top, err := repos.Analytics.TopQueries(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
