package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage"
)

// EntityRepository implements storage.EntityRepository for BadgerDB.
type EntityRepository struct {
	backend *Backend
}

var _ storage.EntityRepository = (*EntityRepository)(nil)

// NewEntityRepository creates a new EntityRepository.
func NewEntityRepository(backend *Backend) (*EntityRepository, error) {
	return &EntityRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *EntityRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EntityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntities adds or replaces one or more entities.
func (r *EntityRepository) AddEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, entity := range entities {
			if entity.Id == 0 {
				entity.Id = core.IDFromContent(entity.Kind.String() + ":" + entity.Text)
			}

			key := makeEntityKey(entity.Id)

			// Caller-supplied IDs may reuse an ID under a new kind; the
			// old kind index entry has to go with it.
			existing, err := readEntity(tx, key)
			if err != nil {
				return err
			}
			if existing != nil && existing.Kind != entity.Kind {
				if err := tx.Delete(makeEntityKindKey(existing.Kind, existing.Id)); err != nil {
					return err
				}
			}

			if entity.InsertedAt.IsZero() {
				entity.InsertedAt = now
			}
			entity.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalEntity(entity)); err != nil {
				return err
			}

			kindKey := makeEntityKindKey(entity.Kind, entity.Id)
			if err := tx.Set(kindKey, storage.MarshalID(entity.Id)); err != nil {
				return err
			}
		}

		if err := bumpDataVersion(tx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return entities, err
}

// GetEntity retrieves a single entity by ID.
func (r *EntityRepository) GetEntity(ctx context.Context, id core.ID) (*core.Entity, error) {
	var result *core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEntity(tx, makeEntityKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListEntities retrieves all entities of the given kind, ordered by text.
func (r *EntityRepository) ListEntities(ctx context.Context, kind core.EntityKind) ([]*core.Entity, error) {
	var results []*core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialEntityKindKey(kind)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			entity, err := readEntity(tx, makeEntityKey(id))
			if err != nil {
				return err
			}
			if entity != nil {
				results = append(results, entity)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.Entity) int {
		return strings.Compare(a.Text, b.Text)
	})
	return results, nil
}

// ListAll retrieves every stored entity.
func (r *EntityRepository) ListAll(ctx context.Context) ([]*core.Entity, error) {
	var results []*core.Entity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = readAllEntities(tx)
		return err
	}, false)
	return results, err
}

// DeleteEntities removes entities by their IDs.
func (r *EntityRepository) DeleteEntities(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEntityKey(id)
			entity, err := readEntity(tx, key)
			if err != nil {
				return err
			}
			if entity == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeEntityKindKey(entity.Kind, entity.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		if err := bumpDataVersion(tx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// UpdateVectors stores precomputed embedding vectors on existing entities.
// Does not bump the data version: vectors change scoring inputs, not the
// dataset identity, and cached results stay valid.
func (r *EntityRepository) UpdateVectors(ctx context.Context, vectors map[core.ID][]float32) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for id, vector := range vectors {
			key := makeEntityKey(id)
			entity, err := readEntity(tx, key)
			if err != nil {
				return err
			}
			if entity == nil {
				return storage.ErrNotFound
			}

			entity.Vector = vector
			entity.UpdatedAt = time.Now().UTC()
			if err := tx.Set(key, storage.MarshalEntity(entity)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Snapshot loads a consistent view of the full dataset in one transaction.
func (r *EntityRepository) Snapshot(ctx context.Context) (*core.Snapshot, error) {
	snapshot := &core.Snapshot{
		Synonyms: make(map[string][]string),
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entities, err := readAllEntities(tx)
		if err != nil {
			return err
		}

		for _, entity := range entities {
			switch entity.Kind {
			case core.KindSynonym:
				base := strings.ToLower(strings.TrimSpace(entity.Text))
				snapshot.Synonyms[base] = append(snapshot.Synonyms[base], entity.Terms...)
			case core.KindBlocklist:
				snapshot.Blocklist = append(snapshot.Blocklist, entity.Text)
			case core.KindAllowlist:
				snapshot.Allowlist = append(snapshot.Allowlist, entity.Text)
			default:
				snapshot.Entities = append(snapshot.Entities, entity)
			}
		}

		snapshot.Version, err = readDataVersion(tx)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// DataVersion returns the current dataset version counter.
func (r *EntityRepository) DataVersion(ctx context.Context) (uint64, error) {
	var version uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		version, err = readDataVersion(tx)
		return err
	}, false)
	return version, err
}

// Helper methods

// readEntity reads an entity from the transaction. Returns nil for missing keys.
func readEntity(tx *badger.Txn, key []byte) (*core.Entity, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entity *core.Entity
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entity, unmarshalErr = storage.UnmarshalEntity(val)
		return unmarshalErr
	})
	return entity, err
}

// readAllEntities iterates the primary entity records.
func readAllEntities(tx *badger.Txn) ([]*core.Entity, error) {
	var results []*core.Entity

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(entityPrefix + ":")
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		var entity *core.Entity
		err := iter.Item().Value(func(val []byte) error {
			var err error
			entity, err = storage.UnmarshalEntity(val)
			return err
		})
		if err != nil {
			return nil, err
		}
		if entity != nil {
			results = append(results, entity)
		}
	}
	return results, nil
}

// readDataVersion reads the dataset version counter, 0 when unset.
func readDataVersion(tx *badger.Txn) (uint64, error) {
	item, err := tx.Get([]byte(dataVersionKey))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var version uint64
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		version, unmarshalErr = storage.UnmarshalCount(val)
		return unmarshalErr
	})
	return version, err
}

// bumpDataVersion increments the dataset version counter within tx.
func bumpDataVersion(tx *badger.Txn) error {
	version, err := readDataVersion(tx)
	if err != nil {
		return err
	}
	return tx.Set([]byte(dataVersionKey), storage.MarshalCount(version+1))
}
