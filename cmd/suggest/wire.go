package main

import (
	"fmt"
	"time"

	"github.com/poiesic/suggest/core"
)

// entityJSON is the wire shape of one entity in import files and data
// listings.
type entityJSON struct {
	Id            uint64                      `json:"id,omitempty"`
	Kind          string                      `json:"kind"`
	Text          string                      `json:"text"`
	Tags          string                      `json:"tags,omitempty"`
	Location      string                      `json:"location,omitempty"`
	Latitude      *float64                    `json:"latitude,omitempty"`
	Longitude     *float64                    `json:"longitude,omitempty"`
	Rating        float64                     `json:"rating,omitempty"`
	ProfileURL    string                      `json:"profile_url,omitempty"`
	ThumbnailURL  string                      `json:"thumbnail_url,omitempty"`
	Featured      bool                        `json:"featured,omitempty"`
	PlanTier      string                      `json:"plan_tier,omitempty"`
	PriorityScore float64                     `json:"priority_score,omitempty"`
	PromoBadge    string                      `json:"promo_badge,omitempty"`
	Hours         map[string][]hoursRangeJSON `json:"hours,omitempty"`
	Terms         []string                    `json:"terms,omitempty"`
}

type hoursRangeJSON struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (e *entityJSON) toEntity() (*core.Entity, error) {
	kind := core.KindFromString(e.Kind)
	if kind == 0 {
		return nil, fmt.Errorf("unknown entity kind %q", e.Kind)
	}

	var hours map[string][]core.HoursRange
	if len(e.Hours) > 0 {
		hours = make(map[string][]core.HoursRange, len(e.Hours))
		for day, ranges := range e.Hours {
			for _, r := range ranges {
				hours[day] = append(hours[day], core.HoursRange{Open: r.Open, Close: r.Close})
			}
		}
	}

	return &core.Entity{
		Id:            core.ID(e.Id),
		Kind:          kind,
		Text:          e.Text,
		Tags:          e.Tags,
		Location:      e.Location,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Rating:        e.Rating,
		ProfileURL:    e.ProfileURL,
		ThumbnailURL:  e.ThumbnailURL,
		Featured:      e.Featured,
		PlanTier:      e.PlanTier,
		PriorityScore: e.PriorityScore,
		PromoBadge:    e.PromoBadge,
		Hours:         hours,
		Terms:         e.Terms,
	}, nil
}

func fromEntity(entity *core.Entity) entityJSON {
	var hours map[string][]hoursRangeJSON
	if len(entity.Hours) > 0 {
		hours = make(map[string][]hoursRangeJSON, len(entity.Hours))
		for day, ranges := range entity.Hours {
			for _, r := range ranges {
				hours[day] = append(hours[day], hoursRangeJSON{Open: r.Open, Close: r.Close})
			}
		}
	}

	return entityJSON{
		Id:            uint64(entity.Id),
		Kind:          entity.Kind.String(),
		Text:          entity.Text,
		Tags:          entity.Tags,
		Location:      entity.Location,
		Latitude:      entity.Latitude,
		Longitude:     entity.Longitude,
		Rating:        entity.Rating,
		ProfileURL:    entity.ProfileURL,
		ThumbnailURL:  entity.ThumbnailURL,
		Featured:      entity.Featured,
		PlanTier:      entity.PlanTier,
		PriorityScore: entity.PriorityScore,
		PromoBadge:    entity.PromoBadge,
		Hours:         hours,
		Terms:         entity.Terms,
	}
}

type memberCardJSON struct {
	Title        string   `json:"title"`
	MemberID     uint64   `json:"member_id,omitempty"`
	ProfileURL   string   `json:"profile_url,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Location     string   `json:"location,omitempty"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	PromoBadge   string   `json:"promo_badge,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

type debugCandidateJSON struct {
	Text       string   `json:"text"`
	Kind       string   `json:"kind"`
	Score      float64  `json:"score"`
	Lexical    float64  `json:"lexical"`
	Semantic   float64  `json:"semantic"`
	Boost      float64  `json:"boost"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type debugInfoJSON struct {
	Intent     string               `json:"intent"`
	City       string               `json:"city,omitempty"`
	Degraded   bool                 `json:"degraded"`
	ColdStart  bool                 `json:"cold_start"`
	Candidates []debugCandidateJSON `json:"candidates,omitempty"`
}

type resultJSON struct {
	OriginalQuery string           `json:"original_query"`
	Suggestions   []string         `json:"suggestions"`
	Cards         []memberCardJSON `json:"cards,omitempty"`
	UserID        string           `json:"user_id,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
	CacheHit      bool             `json:"cache_hit"`
	Debug         *debugInfoJSON   `json:"debug,omitempty"`
}

func rankedResultJSON(result *core.RankedResult) resultJSON {
	out := resultJSON{
		OriginalQuery: result.OriginalQuery,
		Suggestions:   result.Suggestions,
		UserID:        result.UserID,
		Timestamp:     result.Timestamp,
		CacheHit:      result.CacheHit,
	}

	for _, card := range result.Cards {
		out.Cards = append(out.Cards, memberCardJSON{
			Title:        card.Title,
			MemberID:     uint64(card.MemberID),
			ProfileURL:   card.ProfileURL,
			ThumbnailURL: card.ThumbnailURL,
			Rating:       card.Rating,
			Location:     card.Location,
			DistanceKm:   card.DistanceKm,
			PromoBadge:   card.PromoBadge,
			Featured:     card.Featured,
		})
	}

	if result.Debug != nil {
		debug := &debugInfoJSON{
			Intent:    result.Debug.Intent,
			City:      result.Debug.City,
			Degraded:  result.Debug.Degraded,
			ColdStart: result.Debug.ColdStart,
		}
		for _, c := range result.Debug.Candidates {
			debug.Candidates = append(debug.Candidates, debugCandidateJSON{
				Text:       c.Text,
				Kind:       c.Kind,
				Score:      c.Score,
				Lexical:    c.Lexical,
				Semantic:   c.Semantic,
				Boost:      c.Boost,
				DistanceKm: c.DistanceKm,
			})
		}
		out.Debug = debug
	}

	return out
}

type countedJSON struct {
	Text  string `json:"text"`
	Count uint64 `json:"count"`
}

func countedList(items []core.CountedItem) []countedJSON {
	out := make([]countedJSON, len(items))
	for i, item := range items {
		out[i] = countedJSON{Text: item.Text, Count: item.Count}
	}
	return out
}
