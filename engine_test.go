package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/suggest/ai/mock"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/learning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine(t *testing.T, opts ...EngineOption) (*Engine, *mock.MockEmbedder) {
	t.Helper()

	embedder := mock.NewMockEmbedder()
	opts = append([]EngineOption{
		WithInMemoryStorage(),
		WithEmbedder(embedder),
	}, opts...)

	engine, err := NewEngine("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine, embedder
}

func seedEntities(t *testing.T, engine *Engine, entities ...*core.Entity) {
	t.Helper()
	_, err := engine.Entities().AddEntities(context.Background(), entities...)
	require.NoError(t, err)
}

func TestEngine_RankValidatesQuery(t *testing.T) {
	engine, _ := setupEngine(t)

	_, err := engine.Rank(context.Background(), &core.QueryContext{Query: ""})
	assert.ErrorIs(t, err, core.ErrEmptyQuery)
}

func TestEngine_RankEmptyStoreColdStart(t *testing.T) {
	engine, _ := setupEngine(t)

	result, err := engine.Rank(context.Background(), &core.QueryContext{Query: "doctor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Popular services near you"}, result.Suggestions)
}

func TestEngine_PoolSizeOption(t *testing.T) {
	engine, _ := setupEngine(t, WithPoolSize(1))
	seedEntities(t, engine, &core.Entity{Kind: core.KindProfession, Text: "Plumber"})

	result, err := engine.Rank(context.Background(), &core.QueryContext{Query: "plumber", UserID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Suggestions)

	_, err = NewEngine("", WithInMemoryStorage(), WithEmbedder(mock.NewMockEmbedder()), WithPoolSize(0))
	assert.Error(t, err)
}

func TestEngine_CacheHitOnRepeat(t *testing.T) {
	engine, _ := setupEngine(t)
	seedEntities(t, engine,
		&core.Entity{Kind: core.KindProfession, Text: "Plumber"},
		&core.Entity{Kind: core.KindProfession, Text: "Electrician"},
	)

	ctx := context.Background()
	qc := &core.QueryContext{Query: "plumber", UserID: "u1"}

	first, err := engine.Rank(ctx, qc)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := engine.Rank(ctx, qc)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Suggestions, second.Suggestions)
	// Serialized timestamps carry microsecond precision
	assert.WithinDuration(t, first.Timestamp, second.Timestamp, time.Millisecond)
}

func TestEngine_DataWriteInvalidatesCache(t *testing.T) {
	engine, _ := setupEngine(t)
	seedEntities(t, engine, &core.Entity{Kind: core.KindProfession, Text: "Plumber"})

	ctx := context.Background()
	qc := &core.QueryContext{Query: "plumber"}

	_, err := engine.Rank(ctx, qc)
	require.NoError(t, err)

	seedEntities(t, engine, &core.Entity{Kind: core.KindProfession, Text: "Roofer"})

	after, err := engine.Rank(ctx, qc)
	require.NoError(t, err)
	assert.False(t, after.CacheHit)
}

func TestEngine_CacheExpiry(t *testing.T) {
	engine, embedder := setupEngine(t, WithCacheTTL(50*time.Millisecond))
	seedEntities(t, engine, &core.Entity{Kind: core.KindProfession, Text: "Plumber"})

	ctx := context.Background()
	qc := &core.QueryContext{Query: "plumber"}

	_, err := engine.Rank(ctx, qc)
	require.NoError(t, err)
	callsAfterFirst := embedder.CallCount()

	time.Sleep(100 * time.Millisecond)

	result, err := engine.Rank(ctx, qc)
	require.NoError(t, err)
	assert.False(t, result.CacheHit)
	assert.Greater(t, embedder.CallCount(), callsAfterFirst)
}

func TestEngine_DebugBypassesCache(t *testing.T) {
	engine, _ := setupEngine(t)
	seedEntities(t, engine, &core.Entity{Kind: core.KindProfession, Text: "Plumber"})

	ctx := context.Background()

	debugged, err := engine.Rank(ctx, &core.QueryContext{Query: "plumber", Debug: true})
	require.NoError(t, err)
	assert.False(t, debugged.CacheHit)
	assert.NotNil(t, debugged.Debug)

	// The debug request must not have seeded the cache
	plain, err := engine.Rank(ctx, &core.QueryContext{Query: "plumber"})
	require.NoError(t, err)
	assert.False(t, plain.CacheHit)
	assert.Nil(t, plain.Debug)
}

func TestEngine_FeedbackUpdatesProfile(t *testing.T) {
	engine, _ := setupEngine(t)
	ctx := context.Background()

	err := engine.RecordFeedback(ctx, learning.Feedback{
		UserID:     "u1",
		Query:      "plumber",
		Suggestion: "Ace Plumbing",
		Rating:     5,
	})
	require.NoError(t, err)

	profile, err := engine.Learning().GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, profile.Weights["ace plumbing"])
}

func TestEngine_FeedbackIsPersonalized(t *testing.T) {
	engine, _ := setupEngine(t)
	seedEntities(t, engine,
		&core.Entity{Id: 1, Kind: core.KindMember, Text: "Ace Plumbing", ProfileURL: "/ace"},
		&core.Entity{Id: 2, Kind: core.KindMember, Text: "Dodgy Plumbing", ProfileURL: "/dodgy"},
	)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		err := engine.RecordFeedback(ctx, learning.Feedback{
			UserID: "u1", Query: "plumbing", Suggestion: "Dodgy Plumbing", Rating: 1,
		})
		require.NoError(t, err)
	}

	result, err := engine.Rank(ctx, &core.QueryContext{Query: "plumbing", UserID: "u1"})
	require.NoError(t, err)

	require.NotEmpty(t, result.Cards)
	for _, card := range result.Cards {
		assert.NotEqual(t, "Dodgy Plumbing", card.Title)
	}
}

func TestEngine_ImportPipeline(t *testing.T) {
	engine, _ := setupEngine(t)

	pipeline, err := engine.NewImportPipeline()
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	ctx := context.Background()
	added, err := pipeline.Import(ctx, &core.Entity{Kind: core.KindCategory, Text: "Plumbing"})
	require.NoError(t, err)
	pipeline.Wait()

	stored, err := engine.Entities().GetEntity(ctx, added[0].Id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Vector)
}
