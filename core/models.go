package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EntityKind identifies the variant of a directory entity.
type EntityKind int

const (
	// KindMember represents a business or professional listing.
	KindMember EntityKind = iota + 1
	// KindCategory represents a directory category (any nesting level).
	KindCategory
	// KindProfession represents a profession entry.
	KindProfession
	// KindLocation represents a location entry.
	KindLocation
	// KindSynonym represents a synonym mapping entry.
	KindSynonym
	// KindBlocklist represents a blocked term entry.
	KindBlocklist
	// KindAllowlist represents an always-allowed term entry.
	KindAllowlist
)

// String returns the lowercase name of the kind, matching the wire values
// accepted by the manual data operations.
func (k EntityKind) String() string {
	switch k {
	case KindMember:
		return "member"
	case KindCategory:
		return "category"
	case KindProfession:
		return "profession"
	case KindLocation:
		return "location"
	case KindSynonym:
		return "synonym"
	case KindBlocklist:
		return "blacklist"
	case KindAllowlist:
		return "whitelist"
	}
	return "unknown"
}

// KindFromString parses a wire kind name. Returns 0 for unknown names.
func KindFromString(name string) EntityKind {
	switch name {
	case "member":
		return KindMember
	case "category", "subcategory", "subsubcategory":
		return KindCategory
	case "profession":
		return KindProfession
	case "location":
		return KindLocation
	case "synonym":
		return KindSynonym
	case "blacklist", "blocklist":
		return KindBlocklist
	case "whitelist", "allowlist":
		return KindAllowlist
	}
	return 0
}

// HoursRange is a single open interval within a weekday, using "HH:MM"
// 24-hour wall-clock strings. Comparison is lexicographic, which is correct
// for zero-padded times.
type HoursRange struct {
	Open  string
	Close string
}

// Entity is an immutable snapshot of a directory record supplied by the
// entity store. The ranking pipeline never mutates entities; per-request
// scoring state lives on rank.Candidate instead.
type Entity struct {
	Id   ID
	Kind EntityKind
	Text string

	// Tags is the free-text tag/description field (comma separated for members).
	Tags     string
	Location string

	// Latitude/Longitude are nil when the record has no coordinate.
	Latitude  *float64
	Longitude *float64

	Rating       float64
	ProfileURL   string
	ThumbnailURL string

	// Business-rule attributes.
	Featured      bool
	PlanTier      string // "premium", "gold", "platinum" or empty
	PriorityScore float64
	PromoBadge    string
	Hours         map[string][]HoursRange // weekday key "mon".."sun"

	// Terms holds the expansion terms when Kind == KindSynonym (Text is the
	// base term), and the review snippets for members.
	Terms []string

	// Vector is the precomputed embedding for Text (populated by the ingest
	// pipeline; may be empty, in which case the ranker embeds on demand).
	Vector []float32

	InsertedAt time.Time
	UpdatedAt  time.Time
}

// HasCoordinate reports whether both latitude and longitude are present.
func (e *Entity) HasCoordinate() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Snapshot is a read-only view over the persisted site data used by one
// ranking pass. Version changes whenever any entity is written, and is part
// of the suggestion cache fingerprint.
type Snapshot struct {
	Entities  []*Entity
	Synonyms  map[string][]string
	Blocklist []string
	Allowlist []string
	Version   uint64
}

// Empty reports whether the snapshot has no rankable entities.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Entities) == 0
}

// QueryContext carries the per-request user and scene information.
// It is constructed fresh for every rank call and never persisted.
type QueryContext struct {
	Query  string
	UserID string

	// History is the user's recent queries, most recent last.
	History []string

	Location  string
	Latitude  *float64
	Longitude *float64

	Debug   bool
	Variant string // experiment variant label, echoed into the interaction log
}

// HasCoordinate reports whether the user supplied a full coordinate.
func (q *QueryContext) HasCoordinate() bool {
	return q.Latitude != nil && q.Longitude != nil
}

// MemberCard is the structured card emitted for member-sourced results.
type MemberCard struct {
	Title        string
	MemberID     ID
	ProfileURL   string
	ThumbnailURL string
	Rating       float64
	Location     string
	DistanceKm   *float64
	PromoBadge   string
	Featured     bool
}

// DebugCandidate exposes the raw per-signal scores of one ranked candidate.
type DebugCandidate struct {
	Text       string
	Kind       string
	Score      float64
	Lexical    float64
	Semantic   float64
	Boost      float64
	DistanceKm *float64
}

// DebugInfo is the optional diagnostics block of a ranked result.
// Producing it must not mutate any engine state.
type DebugInfo struct {
	Intent     string
	City       string
	Degraded   bool // embedder failed, scoring fell back to lexical only
	ColdStart  bool
	Candidates []DebugCandidate
}

// RankedResult is the full response of one rank operation. The serialized
// form is what the suggestion cache stores; two requests with the same
// fingerprint inside the TTL window receive byte-identical payloads.
type RankedResult struct {
	OriginalQuery string
	Suggestions   []string
	Cards         []MemberCard
	UserID        string
	Timestamp     time.Time
	Debug         *DebugInfo

	// CacheHit is set by the engine after deserializing a cached payload.
	// Stored payloads always carry false.
	CacheHit bool
}

// LearnedProfile is the per-user personalization state. It grows
// monotonically with feedback; no decay or eviction is applied.
type LearnedProfile struct {
	UserID string

	// Weights maps learned terms and suggestion texts to accumulated
	// positive feedback weight.
	Weights map[string]float64

	// Negatives maps suggestion texts explicitly marked unsuccessful to an
	// accumulated suppression weight.
	Negatives map[string]float64

	UpdatedAt time.Time
}

// NewLearnedProfile creates an empty profile for a user.
func NewLearnedProfile(userID string) *LearnedProfile {
	return &LearnedProfile{
		UserID:    userID,
		Weights:   make(map[string]float64),
		Negatives: make(map[string]float64),
	}
}

// Interaction is one logged search or feedback event. Interactions feed the
// analytics collaborator and are append-only.
type Interaction struct {
	UserID      string
	Query       string
	Suggestions []string
	Selected    string
	Rating      int // 0 = not rated yet, otherwise 1-5
	Location    string
	Variant     string
	Timestamp   time.Time
}

// CountedItem pairs a text with its popularity counter. Used by the
// analytics surface for top-query and top-suggestion reports.
type CountedItem struct {
	Text  string
	Count uint64
}
