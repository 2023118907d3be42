package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage"
)

// LearningRepository implements storage.LearningRepository for BadgerDB.
type LearningRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.LearningRepository = (*LearningRepository)(nil)

// NewLearningRepository creates a new LearningRepository.
func NewLearningRepository(backend *Backend) (*LearningRepository, error) {
	idSeq, err := backend.GetSequence(interactionIDSeq)
	if err != nil {
		return nil, err
	}

	return &LearningRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the interaction sequence.
func (r *LearningRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *LearningRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetProfile retrieves the learned profile for a user.
// Returns an empty profile if the user has no history.
func (r *LearningRepository) GetProfile(ctx context.Context, userID string) (*core.LearnedProfile, error) {
	var profile *core.LearnedProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(userID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			profile, unmarshalErr = storage.UnmarshalProfile(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = core.NewLearnedProfile(userID)
	}
	// Older payloads may carry nil maps
	if profile.Weights == nil {
		profile.Weights = make(map[string]float64)
	}
	if profile.Negatives == nil {
		profile.Negatives = make(map[string]float64)
	}
	return profile, nil
}

// PutProfile stores a learned profile, replacing any previous one.
func (r *LearningRepository) PutProfile(ctx context.Context, profile *core.LearnedProfile) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		profile.UpdatedAt = time.Now().UTC()
		if err := tx.Set(makeProfileKey(profile.UserID), storage.MarshalProfile(profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// AddInteraction appends a record to the interaction log.
func (r *LearningRepository) AddInteraction(ctx context.Context, interaction *core.Interaction) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if interaction.Timestamp.IsZero() {
			interaction.Timestamp = time.Now().UTC()
		}

		seq, err := r.idSeq.Next()
		if err != nil {
			return err
		}

		key := makeInteractionKey(interaction.UserID, interaction.Timestamp.UnixMicro(), seq)
		if err := tx.Set(key, storage.MarshalInteraction(interaction)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// RecentInteractions retrieves the N most recent interactions for a user.
func (r *LearningRepository) RecentInteractions(ctx context.Context, userID string, limit int) ([]*core.Interaction, error) {
	var results []*core.Interaction
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialInteractionKey(userID)

		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible key for this user, then walk backwards.
		startKey := append(slices.Clone(prefix), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var interaction *core.Interaction
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				interaction, err = storage.UnmarshalInteraction(val)
				return err
			}); err != nil {
				return err
			}
			if interaction != nil {
				results = append(results, interaction)
			}
		}
		return nil
	}, false)

	return results, err
}
