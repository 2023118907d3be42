package learning

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/storage"
)

// Feedback is one explicit user judgement on a served suggestion.
type Feedback struct {
	UserID     string
	Query      string
	Suggestion string
	// Rating is the 1-5 success scale: 4-5 reinforce, 1-2 suppress, 3 is
	// logged without changing the profile.
	Rating   int
	Location string
	Variant  string
}

// Recorder folds feedback events into per-user learned profiles and the
// interaction log. Profile updates for the same user are serialized; distinct
// users proceed concurrently.
type Recorder struct {
	learning  storage.LearningRepository
	analytics storage.AnalyticsRepository
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a Recorder.
type Option func(*Recorder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithAnalytics attaches the analytics repository. Without it, feedback still
// updates profiles and the interaction log but no popularity counter moves.
func WithAnalytics(analytics storage.AnalyticsRepository) Option {
	return func(r *Recorder) error {
		r.analytics = analytics
		return nil
	}
}

// NewRecorder creates a feedback recorder over the given learning repository.
func NewRecorder(learning storage.LearningRepository, opts ...Option) (*Recorder, error) {
	if learning == nil {
		return nil, ErrLearningRepoRequired
	}

	r := &Recorder{
		learning: learning,
		logger:   slog.Default().With("component", "recorder"),
		locks:    make(map[string]*sync.Mutex),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// userLock returns the mutex serializing profile writes for one user.
func (r *Recorder) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}

// RecordFeedback validates and applies one feedback event: the learned
// profile is updated by rating band, the event is appended to the
// interaction log, and positive feedback bumps the suggestion's global
// popularity counter.
func (r *Recorder) RecordFeedback(ctx context.Context, fb Feedback) error {
	if err := core.ValidateFeedback(fb.Query, fb.Suggestion, fb.Rating); err != nil {
		return err
	}

	lowered := strings.ToLower(strings.TrimSpace(fb.Suggestion))

	lock := r.userLock(fb.UserID)
	lock.Lock()
	profile, err := r.learning.GetProfile(ctx, fb.UserID)
	if err == nil {
		switch {
		case fb.Rating > 3:
			profile.Weights[lowered] += float64(fb.Rating)
			for _, term := range sharedTerms(fb.Query, fb.Suggestion) {
				profile.Weights[term] += float64(fb.Rating)
			}
		case fb.Rating <= 2:
			profile.Negatives[lowered] += float64(3 - fb.Rating)
		default:
			// Neutral rating: logged, profile untouched
		}
		err = r.learning.PutProfile(ctx, profile)
	}
	lock.Unlock()
	if err != nil {
		return err
	}

	if err := r.learning.AddInteraction(ctx, &core.Interaction{
		UserID:   fb.UserID,
		Query:    fb.Query,
		Selected: fb.Suggestion,
		Rating:   fb.Rating,
		Location: fb.Location,
		Variant:  fb.Variant,
	}); err != nil {
		return err
	}

	if r.analytics != nil && fb.Rating > 3 {
		if err := r.analytics.IncrSuggestionCount(ctx, lowered); err != nil {
			// Counters are advisory; a failed bump never fails the feedback
			r.logger.Warn("suggestion counter bump failed", "suggestion", lowered, "err", err)
		}
	}

	r.logger.Debug("feedback recorded",
		"user", fb.UserID, "suggestion", lowered, "rating", fb.Rating)
	return nil
}

// sharedTerms returns the lowercased terms present in both the query and the
// suggestion, so reinforcement generalizes beyond the exact suggestion text.
func sharedTerms(query, suggestion string) []string {
	queryTerms := make(map[string]bool)
	for _, t := range splitTerms(query) {
		queryTerms[t] = true
	}

	var shared []string
	seen := make(map[string]bool)
	for _, t := range splitTerms(suggestion) {
		if queryTerms[t] && !seen[t] {
			seen[t] = true
			shared = append(shared, t)
		}
	}
	return shared
}

func splitTerms(s string) []string {
	var terms []string
	for _, f := range strings.Fields(strings.ToLower(s)) {
		f = strings.Trim(f, ".,!?;:'\"-()[]{}")
		if len(f) > 2 {
			terms = append(terms, f)
		}
	}
	return terms
}
