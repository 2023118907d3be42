package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/suggest/ai"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage"
)

// Pipeline imports site-data entities and backfills their embedding vectors
// asynchronously. Entities become rankable as soon as the import returns;
// until the vector backfill lands, the ranker embeds their text on demand.
type Pipeline struct {
	entities storage.EntityRepository
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger

	maxAttempts int
	baseDelay   time.Duration

	pending sync.WaitGroup
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for the vector backfill.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithRetry sets the retry policy for embedding and vector-write calls.
// Default is 3 attempts starting at 500ms.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(entities storage.EntityRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if entities == nil {
		return nil, ErrEntityRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		entities:    entities,
		embedder:    embedder,
		pool:        pool,
		logger:      slog.Default().With("component", "ingest"),
		maxAttempts: 3,
		baseDelay:   500 * time.Millisecond,
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// Import validates and stores the given entities, then schedules the vector
// backfill for rankable kinds. Backfill errors are logged, never returned:
// lexical scoring works on unvectored entities and the ranker embeds on
// demand until vectors land.
func (p *Pipeline) Import(ctx context.Context, entities ...*core.Entity) ([]*core.Entity, error) {
	for i, entity := range entities {
		if err := core.ValidateEntity(entity); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}

	added, err := p.entities.AddEntities(ctx, entities...)
	if err != nil {
		return nil, err
	}

	var backfill []*core.Entity
	for _, entity := range added {
		if needsVector(entity) {
			backfill = append(backfill, entity)
		}
	}
	if len(backfill) == 0 {
		return added, nil
	}

	p.pending.Add(1)
	submitErr := p.pool.Submit(func() {
		defer p.pending.Done()
		p.backfillVectors(context.Background(), backfill)
	})
	if submitErr != nil {
		p.pending.Done()
		p.logger.Error("vector backfill not scheduled", "err", submitErr)
	}

	return added, nil
}

// Wait blocks until all scheduled vector backfills complete.
func (p *Pipeline) Wait() {
	p.pending.Wait()
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// needsVector reports whether the entity's kind is scored semantically and
// still lacks a precomputed vector.
func needsVector(entity *core.Entity) bool {
	switch entity.Kind {
	case core.KindMember, core.KindCategory, core.KindProfession, core.KindLocation:
		return len(entity.Vector) == 0 && entity.Text != ""
	default:
		return false
	}
}

// backfillVectors embeds the entity texts in one batch and writes the
// vectors back, retrying both sides with exponential backoff.
func (p *Pipeline) backfillVectors(ctx context.Context, entities []*core.Entity) {
	texts := make([]string, len(entities))
	for i, entity := range entities {
		texts[i] = entity.Text
	}

	var vectors [][]float32
	err := retryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, p.maxAttempts, p.baseDelay)
	if err != nil {
		p.logger.Error("vector backfill embedding failed", "count", len(texts), "err", err)
		return
	}
	if len(vectors) != len(entities) {
		p.logger.Error("embedder returned wrong vector count",
			"want", len(entities), "got", len(vectors))
		return
	}

	updates := make(map[core.ID][]float32, len(entities))
	for i, entity := range entities {
		updates[entity.Id] = vectors[i]
	}

	err = retryWithBackoff(ctx, func() error {
		return p.entities.UpdateVectors(ctx, updates)
	}, p.maxAttempts, p.baseDelay)
	if err != nil {
		p.logger.Error("vector backfill write failed", "count", len(updates), "err", err)
		return
	}

	p.logger.Debug("vector backfill complete", "count", len(updates))
}
