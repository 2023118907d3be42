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


package rank

import "time"

// Config holds the fusion weights and ranking knobs. Every business-rule
// contribution is independently configurable.
type Config struct {
	// Fusion weights for the two relevance signals.
	SemanticWeight float64
	LexicalWeight  float64

	// Boost contributions.
	HistoryBoost    float64 // candidate matches a recent history entry
	HighRatingBoost float64 // rating >= HighRatingMin
	HighRatingMin   float64
	LocationBoost   float64 // resolved city appears in candidate location
	LearnedBoost    float64 // scale for learned-profile weights
	FeaturedBoost   float64
	PlanTierBoost   float64 // premium/gold/platinum tiers
	PriorityWeight  float64 // multiplied by the entity's priority score
	OpenNowBoost    float64
	PromoBoost      float64

	// Distance decay: within NearKm the strong boost, within MidKm the
	// moderate one, nothing beyond.
	NearKm    float64
	NearBoost float64
	MidKm     float64
	MidBoost  float64

	// RadiusKm hard-excludes candidates farther than this from the user.
	// Zero disables the filter.
	RadiusKm float64

	// NegativePenalty is subtracted when a candidate's text is in the user's
	// negative-feedback set. Large enough to push a suggestion below
	// MinScore.
	NegativePenalty float64

	// MinScore is the relevance floor: candidates scoring below it are
	// dropped, and when none survive the popular-defaults set is returned.
	MinScore float64

	// TopK bounds the rendered suggestion and card counts.
	TopK int

	// MemoSize bounds the candidate embedding LRU.
	MemoSize int

	// nowFn supplies the clock for open-now checks; tests override it.
	nowFn func() time.Time
}

// DefaultConfig returns the production fusion weights.
func DefaultConfig() Config {
	return Config{
		SemanticWeight:  0.7,
		LexicalWeight:   0.3,
		HistoryBoost:    0.1,
		HighRatingBoost: 0.1,
		HighRatingMin:   4.5,
		LocationBoost:   0.1,
		LearnedBoost:    0.15,
		FeaturedBoost:   0.10,
		PlanTierBoost:   0.08,
		PriorityWeight:  0.05,
		OpenNowBoost:    0.05,
		PromoBoost:      0.03,
		NearKm:          5,
		NearBoost:       0.15,
		MidKm:           20,
		MidBoost:        0.08,
		RadiusKm:        0,
		NegativePenalty: 1.0,
		MinScore:        0.05,
		TopK:            5,
		MemoSize:        1024,
		nowFn:           time.Now,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.TopK <= 0 || c.MemoSize <= 0 {
		return ErrInvalidConfig
	}
	if c.SemanticWeight < 0 || c.LexicalWeight < 0 {
		return ErrInvalidConfig
	}
	if c.nowFn == nil {
		c.nowFn = time.Now
	}
	return nil
}

// planTiers are the plan levels that earn the tier boost.
var planTiers = map[string]bool{
	"premium":  true,
	"gold":     true,
	"platinum": true,
}
