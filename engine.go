// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/suggest/ai"
	"github.com/poiesic/suggest/ai/openai"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/ingest"
	"github.com/poiesic/suggest/learning"
	"github.com/poiesic/suggest/rank"
	"github.com/poiesic/suggest/storage"
	"github.com/poiesic/suggest/storage/badger"
)

// Engine ties the suggestion pipeline together: the entity store, the
// ranker, the TTL result cache keyed by request fingerprint, the feedback
// recorder, and the popularity counters.
type Engine struct {
	repos      *badger.Repositories
	cache      storage.CacheRepository
	ownedCache bool
	embedder   ai.Embedder
	ranker     *rank.Ranker
	recorder   *learning.Recorder
	pool       *ants.Pool
	logger     *slog.Logger
	cacheTTL   time.Duration
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig   *ai.Config
	rankConfig *rank.Config
	embedder   ai.Embedder
	cache      storage.CacheRepository
	cacheTTL   time.Duration
	poolSize   int
	inMemory   bool
	logger     *slog.Logger
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithRankConfig replaces the default ranking configuration.
func WithRankConfig(config rank.Config) EngineOption {
	return func(o *engineOptions) {
		o.rankConfig = &config
	}
}

// WithEmbedder supplies the embedder directly, bypassing the AI config.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithSuggestionCache replaces the default local result cache, typically
// with the Redis-backed repository when several instances share load.
// The engine takes ownership and closes it.
func WithSuggestionCache(cache storage.CacheRepository) EngineOption {
	return func(o *engineOptions) {
		o.cache = cache
	}
}

// WithCacheTTL sets the result cache lifetime. Default is 5 minutes.
func WithCacheTTL(ttl time.Duration) EngineOption {
	return func(o *engineOptions) {
		o.cacheTTL = ttl
	}
}

// WithPoolSize sets the number of workers handling post-serve bookkeeping
// (query counters, interaction logs). Default is 4.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// WithInMemoryStorage keeps all state in memory. For tests and ephemeral use.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine opens the entity store at filePath and wires the full pipeline.
// Caller must Close when done.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		cacheTTL: 5 * time.Minute,
		poolSize: 4,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	var repos *badger.Repositories
	var err error
	if options.inMemory {
		repos, err = badger.NewMemoryRepositories()
	} else {
		repos, err = badger.NewRepositories(filePath)
	}
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	rankOpts := []rank.Option{rank.WithLogger(logger)}
	if options.rankConfig != nil {
		rankOpts = append(rankOpts, rank.WithConfig(*options.rankConfig))
	}
	ranker, err := rank.NewRanker(embedder, rankOpts...)
	if err != nil {
		repos.Close()
		return nil, err
	}

	recorder, err := learning.NewRecorder(repos.Learning,
		learning.WithAnalytics(repos.Analytics),
		learning.WithLogger(logger))
	if err != nil {
		repos.Close()
		return nil, err
	}

	if options.poolSize < 1 {
		repos.Close()
		return nil, fmt.Errorf("engine: pool size must be at least 1, got %d", options.poolSize)
	}
	pool, err := ants.NewPool(options.poolSize)
	if err != nil {
		repos.Close()
		return nil, err
	}

	cache := options.cache
	ownedCache := cache != nil
	if cache == nil {
		cache = repos.Cache
	}

	return &Engine{
		repos:      repos,
		cache:      cache,
		ownedCache: ownedCache,
		embedder:   embedder,
		ranker:     ranker,
		recorder:   recorder,
		pool:       pool,
		logger:     logger,
		cacheTTL:   options.cacheTTL,
	}, nil
}

// Rank serves one suggestion request. Results are cached by fingerprint for
// the configured TTL; any site-data write changes the data version and
// thereby invalidates every cached result. Debug requests bypass the cache
// in both directions.
func (e *Engine) Rank(ctx context.Context, qc *core.QueryContext) (*core.RankedResult, error) {
	if err := core.ValidateQueryContext(qc); err != nil {
		return nil, err
	}

	snapshot, err := e.repos.Entities.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	fingerprint := rank.Fingerprint(qc, e.ranker.Config().RadiusKm, snapshot.Version)

	if !qc.Debug {
		if payload, err := e.cache.Get(ctx, fingerprint); err == nil {
			result, err := storage.UnmarshalRankedResult(payload)
			if err == nil {
				result.CacheHit = true
				e.afterServe(qc, result)
				return result, nil
			}
			// Corrupt entry: recompute and overwrite on the Put below
			e.logger.Warn("discarding unreadable cache entry", "fingerprint", fingerprint, "err", err)
		}
	}

	var profile *core.LearnedProfile
	if qc.UserID != "" {
		profile, err = e.repos.Learning.GetProfile(ctx, qc.UserID)
		if err != nil {
			e.logger.Warn("profile load failed, ranking without personalization",
				"user", qc.UserID, "err", err)
			profile = nil
		}
	}

	popularity, err := e.repos.Analytics.SuggestionCounts(ctx)
	if err != nil {
		e.logger.Warn("popularity counters unavailable", "err", err)
		popularity = nil
	}

	result, err := e.ranker.Rank(ctx, qc, snapshot, profile, popularity)
	if err != nil {
		return nil, err
	}

	if !qc.Debug {
		if err := e.cache.Put(ctx, fingerprint, storage.MarshalRankedResult(result), e.cacheTTL); err != nil {
			e.logger.Warn("result cache write failed", "fingerprint", fingerprint, "err", err)
		}
	}

	e.afterServe(qc, result)
	return result, nil
}

// afterServe bumps the query counter and logs the interaction off the
// request path. Failures are logged, never surfaced.
func (e *Engine) afterServe(qc *core.QueryContext, result *core.RankedResult) {
	query := rank.NormalizeQuery(qc.Query)
	userID := qc.UserID
	suggestions := result.Suggestions
	location := qc.Location
	variant := qc.Variant

	err := e.pool.Submit(func() {
		ctx := context.Background()
		if err := e.repos.Analytics.IncrQueryCount(ctx, query); err != nil {
			e.logger.Warn("query counter bump failed", "query", query, "err", err)
		}
		if userID == "" {
			return
		}
		err := e.repos.Learning.AddInteraction(ctx, &core.Interaction{
			UserID:      userID,
			Query:       query,
			Suggestions: suggestions,
			Location:    location,
			Variant:     variant,
		})
		if err != nil {
			e.logger.Warn("interaction log append failed", "user", userID, "err", err)
		}
	})
	if err != nil {
		e.logger.Warn("interaction bookkeeping not scheduled", "err", err)
	}
}

// RecordFeedback applies one feedback event to the user's learned profile,
// the interaction log, and the popularity counters.
func (e *Engine) RecordFeedback(ctx context.Context, fb learning.Feedback) error {
	return e.recorder.RecordFeedback(ctx, fb)
}

// NewImportPipeline creates an import pipeline over the engine's entity
// store and embedder.
func (e *Engine) NewImportPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(e.repos.Entities, e.embedder, opts...)
}

func (e *Engine) Entities() storage.EntityRepository {
	return e.repos.Entities
}

func (e *Engine) Learning() storage.LearningRepository {
	return e.repos.Learning
}

func (e *Engine) Analytics() storage.AnalyticsRepository {
	return e.repos.Analytics
}

// Ranker exposes the configured ranker, mainly for diagnostics.
func (e *Engine) Ranker() *rank.Ranker {
	return e.ranker
}

func (e *Engine) Close() error {
	e.pool.Release()

	if e.ownedCache {
		if err := e.cache.Close(); err != nil {
			e.logger.Error("error closing suggestion cache", "err", err)
		}
	}

	if err := e.repos.Close(); err != nil {
		e.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}
