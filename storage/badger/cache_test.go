package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/suggest/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository_Miss(t *testing.T) {
	repos := setupRepos(t)

	_, err := repos.Cache.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCacheRepository_PutAndGet(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	payload := []byte("serialized result")
	require.NoError(t, repos.Cache.Put(ctx, "fp-1", payload, time.Minute))

	got, err := repos.Cache.Get(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestCacheRepository_FirstWriterWins(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Cache.Put(ctx, "fp-2", []byte("first"), time.Minute))
	require.NoError(t, repos.Cache.Put(ctx, "fp-2", []byte("second"), time.Minute))

	got, err := repos.Cache.Get(ctx, "fp-2")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestCacheRepository_Expiry(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Cache.Put(ctx, "fp-3", []byte("short lived"), 50*time.Millisecond))

	time.Sleep(100 * time.Millisecond)

	_, err := repos.Cache.Get(ctx, "fp-3")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
