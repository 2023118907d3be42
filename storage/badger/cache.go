package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/suggest/storage"
)

// CacheRepository implements storage.CacheRepository for BadgerDB using
// native entry TTLs. Expired entries surface as cache misses.
type CacheRepository struct {
	backend *Backend
}

var _ storage.CacheRepository = (*CacheRepository)(nil)

// NewCacheRepository creates a new CacheRepository.
func NewCacheRepository(backend *Backend) (*CacheRepository, error) {
	return &CacheRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *CacheRepository) Close() error {
	return nil
}

// Get retrieves the cached payload for a fingerprint.
func (r *CacheRepository) Get(ctx context.Context, fingerprint string) ([]byte, error) {
	var payload []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheKey(fingerprint))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Put stores a payload under a fingerprint with the given TTL.
// First writer wins: if a live entry already exists the payload is
// discarded, so concurrent computes of the same fingerprint all end up
// serving one stored result.
func (r *CacheRepository) Put(ctx context.Context, fingerprint string, payload []byte, ttl time.Duration) error {
	key := makeCacheKey(fingerprint)
	return r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		entry := badger.NewEntry(key, payload).WithTTL(ttl)
		if err := tx.SetEntry(entry); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
