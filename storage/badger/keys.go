package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/suggest/core"
)

// Key prefixes for different data types
const (
	entityPrefix      = "entrec"
	entityKindPrefix  = "entknd"
	dataVersionKey    = "datver"
	profilePrefix     = "lrnpro"
	interactionPrefix = "intlog"
	interactionIDSeq  = "intlogseq"
	cachePrefix       = "sugcac"
	queryCountPrefix  = "anaqry"
	sugCountPrefix    = "anasug"
)

// makeEntityKey generates a key for an entity by ID.
func makeEntityKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entityPrefix, id))
}

// makeEntityKindKey generates a composite key for the kind index.
// Format: prefix:kind:id
func makeEntityKindKey(kind core.EntityKind, id core.ID) []byte {
	prefix := fmt.Sprintf("%s:%d:", entityKindPrefix, kind)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialEntityKindKey generates the iteration prefix for one kind.
func makePartialEntityKindKey(kind core.EntityKind) []byte {
	return []byte(fmt.Sprintf("%s:%d:", entityKindPrefix, kind))
}

// makeProfileKey generates a key for a learned profile by user ID.
func makeProfileKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", profilePrefix, userID))
}

// makeInteractionKey generates a composite key for the interaction log.
// Format: prefix:userID:timestamp:seq
// Timestamp and sequence are BigEndian so lexicographic order is
// chronological within a user.
func makeInteractionKey(userID string, unixMicro int64, seq uint64) []byte {
	prefix := fmt.Sprintf("%s:%s:", interactionPrefix, userID)
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(unixMicro))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePartialInteractionKey generates the iteration prefix for one user's log.
func makePartialInteractionKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", interactionPrefix, userID))
}

// makeCacheKey generates a key for a cached suggestion payload.
func makeCacheKey(fingerprint string) []byte {
	return []byte(fmt.Sprintf("%s:%s", cachePrefix, fingerprint))
}

// makeQueryCountKey generates a key for a query popularity counter.
func makeQueryCountKey(query string) []byte {
	return []byte(fmt.Sprintf("%s:%s", queryCountPrefix, query))
}

// makeSuggestionCountKey generates a key for a suggestion served counter.
func makeSuggestionCountKey(suggestion string) []byte {
	return []byte(fmt.Sprintf("%s:%s", sugCountPrefix, suggestion))
}
