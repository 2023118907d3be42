package badger

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage"
)

// Counter increments under write contention can hit badger's optimistic
// conflict detection; retry a bounded number of times.
const maxCounterRetries = 5

// AnalyticsRepository implements storage.AnalyticsRepository for BadgerDB.
type AnalyticsRepository struct {
	backend *Backend
}

var _ storage.AnalyticsRepository = (*AnalyticsRepository)(nil)

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(backend *Backend) (*AnalyticsRepository, error) {
	return &AnalyticsRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *AnalyticsRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *AnalyticsRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// IncrQueryCount increments the popularity counter for a normalized query.
func (r *AnalyticsRepository) IncrQueryCount(ctx context.Context, query string) error {
	return r.increment(makeQueryCountKey(query))
}

// IncrSuggestionCount increments the served counter for a suggestion text.
func (r *AnalyticsRepository) IncrSuggestionCount(ctx context.Context, suggestion string) error {
	return r.increment(makeSuggestionCountKey(suggestion))
}

// TopQueries returns up to limit queries ordered by count descending.
func (r *AnalyticsRepository) TopQueries(ctx context.Context, limit int) ([]core.CountedItem, error) {
	return r.topCounters(queryCountPrefix, limit)
}

// TopSuggestions returns up to limit suggestions ordered by count descending.
func (r *AnalyticsRepository) TopSuggestions(ctx context.Context, limit int) ([]core.CountedItem, error) {
	return r.topCounters(sugCountPrefix, limit)
}

// SuggestionCounts returns the full suggestion counter map.
func (r *AnalyticsRepository) SuggestionCounts(ctx context.Context) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	items, err := r.readCounters(sugCountPrefix)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		counts[item.Text] = item.Count
	}
	return counts, nil
}

// increment adds one to the counter stored under key, retrying on
// transaction conflicts.
func (r *AnalyticsRepository) increment(key []byte) error {
	var err error
	for attempt := 0; attempt < maxCounterRetries; attempt++ {
		err = r.backend.WithTx(func(tx *badger.Txn) error {
			var count uint64
			item, getErr := tx.Get(key)
			if getErr == nil {
				if valErr := item.Value(func(val []byte) error {
					var unmarshalErr error
					count, unmarshalErr = storage.UnmarshalCount(val)
					return unmarshalErr
				}); valErr != nil {
					return valErr
				}
			} else if getErr != badger.ErrKeyNotFound {
				return getErr
			}

			if setErr := tx.Set(key, storage.MarshalCount(count+1)); setErr != nil {
				return setErr
			}
			return tx.Commit()
		}, true)
		if err != badger.ErrConflict {
			return err
		}
	}
	return err
}

// readCounters collects every counter under a prefix.
func (r *AnalyticsRepository) readCounters(prefix string) ([]core.CountedItem, error) {
	fullPrefix := []byte(prefix + ":")
	var items []core.CountedItem

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = fullPrefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			text := string(bytes.TrimPrefix(key, fullPrefix))

			var count uint64
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				count, err = storage.UnmarshalCount(val)
				return err
			}); err != nil {
				return err
			}

			items = append(items, core.CountedItem{Text: text, Count: count})
		}
		return nil
	}, false)

	return items, err
}

// topCounters reads all counters under a prefix and returns the top entries,
// count descending, ties broken by text ascending.
func (r *AnalyticsRepository) topCounters(prefix string, limit int) ([]core.CountedItem, error) {
	items, err := r.readCounters(prefix)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(items, func(a, b core.CountedItem) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Text, b.Text)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
