package storage

import (
	"context"
	"time"

	"github.com/poiesic/suggest/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// EntityRepository provides operations for managing site-data entities:
// member businesses, categories, professions, locations, synonym rules,
// and the blocklist/allowlist terms.
type EntityRepository interface {
	Repository

	// AddEntities adds or replaces one or more entities.
	// For entities with Id=0, derives a content-based ID from kind and text.
	// Sets InsertedAt if not already set, always updates UpdatedAt.
	// Bumps the data version once per call.
	// Returns the entities with IDs and timestamps populated.
	AddEntities(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error)

	// GetEntity retrieves a single entity by ID.
	// Returns ErrNotFound if the entity doesn't exist.
	GetEntity(ctx context.Context, id core.ID) (*core.Entity, error)

	// ListEntities retrieves all entities of the given kind, ordered by text.
	ListEntities(ctx context.Context, kind core.EntityKind) ([]*core.Entity, error)

	// ListAll retrieves every stored entity.
	ListAll(ctx context.Context) ([]*core.Entity, error)

	// DeleteEntities removes entities by their IDs and bumps the data version.
	// Returns ErrNotFound if any entity doesn't exist.
	DeleteEntities(ctx context.Context, ids ...core.ID) error

	// UpdateVectors stores precomputed embedding vectors on existing entities
	// without bumping the data version.
	// Returns ErrNotFound if any entity doesn't exist.
	UpdateVectors(ctx context.Context, vectors map[core.ID][]float32) error

	// Snapshot loads a consistent view of the full dataset: all entities
	// plus the expanded synonym map, blocklist, allowlist and data version.
	// All reads happen inside a single transaction.
	Snapshot(ctx context.Context) (*core.Snapshot, error)

	// DataVersion returns the current dataset version counter.
	// The version changes on every AddEntities/DeleteEntities call, which
	// invalidates cached suggestion results built from older data.
	DataVersion(ctx context.Context) (uint64, error)
}

// LearningRepository provides operations for per-user learned profiles
// and the interaction log.
type LearningRepository interface {
	Repository

	// GetProfile retrieves the learned profile for a user.
	// Returns an empty profile (never nil) if the user has no history.
	GetProfile(ctx context.Context, userID string) (*core.LearnedProfile, error)

	// PutProfile stores a learned profile, replacing any previous one.
	PutProfile(ctx context.Context, profile *core.LearnedProfile) error

	// AddInteraction appends a record to the interaction log.
	// Sets Timestamp if not already set.
	AddInteraction(ctx context.Context, interaction *core.Interaction) error

	// RecentInteractions retrieves the N most recent interactions for a user,
	// most recent first.
	RecentInteractions(ctx context.Context, userID string, limit int) ([]*core.Interaction, error)
}

// CacheRepository provides the TTL suggestion cache keyed by request
// fingerprint. Payloads are opaque serialized results.
type CacheRepository interface {
	// Get retrieves the cached payload for a fingerprint.
	// Returns ErrNotFound on a miss or after expiry.
	Get(ctx context.Context, fingerprint string) ([]byte, error)

	// Put stores a payload under a fingerprint with the given TTL.
	// Concurrent computes of the same fingerprint are resolved
	// first-writer-wins: a Put against an existing live entry is a no-op.
	Put(ctx context.Context, fingerprint string, payload []byte, ttl time.Duration) error

	// Close releases cache resources.
	Close() error
}

// AnalyticsRepository provides popularity counters used for cold-start
// ordering and the analytics surface.
type AnalyticsRepository interface {
	Repository

	// IncrQueryCount increments the popularity counter for a normalized query.
	IncrQueryCount(ctx context.Context, query string) error

	// IncrSuggestionCount increments the served counter for a suggestion text.
	IncrSuggestionCount(ctx context.Context, suggestion string) error

	// TopQueries returns up to limit queries ordered by count descending,
	// ties broken by query text ascending.
	TopQueries(ctx context.Context, limit int) ([]core.CountedItem, error)

	// TopSuggestions returns up to limit suggestions ordered by count
	// descending, ties broken by text ascending.
	TopSuggestions(ctx context.Context, limit int) ([]core.CountedItem, error)

	// SuggestionCounts returns the full suggestion counter map.
	SuggestionCounts(ctx context.Context) (map[string]uint64, error)
}
