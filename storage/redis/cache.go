package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/poiesic/suggest/storage"
)

const defaultKeyPrefix = "suggest:cache:"

// CacheRepository implements storage.CacheRepository on Redis. It is the
// deployment choice when multiple engine instances need to share one
// suggestion cache; single-node deployments use the BadgerDB cache.
type CacheRepository struct {
	client    redis.UniversalClient
	keyPrefix string
}

var _ storage.CacheRepository = (*CacheRepository)(nil)

// NewCacheRepository creates a cache backed by the given Redis client.
func NewCacheRepository(client redis.UniversalClient) *CacheRepository {
	return &CacheRepository{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
}

// NewCacheRepositoryFromAddr creates a cache connected to a Redis address.
func NewCacheRepositoryFromAddr(addr string) *CacheRepository {
	return NewCacheRepository(redis.NewClient(&redis.Options{Addr: addr}))
}

// Get retrieves the cached payload for a fingerprint.
func (r *CacheRepository) Get(ctx context.Context, fingerprint string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.keyPrefix+fingerprint).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Put stores a payload under a fingerprint with the given TTL.
// SetNX gives first-writer-wins semantics across engine instances.
func (r *CacheRepository) Put(ctx context.Context, fingerprint string, payload []byte, ttl time.Duration) error {
	return r.client.SetNX(ctx, r.keyPrefix+fingerprint, payload, ttl).Err()
}

// Close closes the underlying Redis client.
func (r *CacheRepository) Close() error {
	return r.client.Close()
}
