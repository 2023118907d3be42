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


package core

import (
	"fmt"
	"strings"
)

// ValidateQueryContext validates a QueryContext according to domain rules.
//
// Validation rules:
//   - Query must not be empty after trimming whitespace
//   - Latitude and Longitude must be given together or not at all
//
// NOT validated:
//   - UserID (empty means anonymous)
//   - History (any length is accepted; older entries simply weigh less)
func ValidateQueryContext(qc *QueryContext) error {
	if qc == nil {
		return fmt.Errorf("%w: query context is nil", ErrInvalidQuery)
	}

	if strings.TrimSpace(qc.Query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyQuery)
	}

	if (qc.Latitude == nil) != (qc.Longitude == nil) {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrPartialCoordinate)
	}

	return nil
}

// ValidateEntity validates an Entity according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Kind must be a known EntityKind
//   - Latitude and Longitude must be given together or not at all
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the ingest pipeline embeds it)
//   - ID (content-based, assigned by the store)
func ValidateEntity(entity *Entity) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", ErrInvalidEntity)
	}

	if strings.TrimSpace(entity.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyEntityText)
	}

	if err := ValidateEntityKind(entity.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	if (entity.Latitude == nil) != (entity.Longitude == nil) {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrPartialCoordinate)
	}

	return nil
}

// ValidateEntityKind validates that an EntityKind has a valid value.
func ValidateEntityKind(kind EntityKind) error {
	if kind < KindMember || kind > KindAllowlist {
		return fmt.Errorf("%w: value %d", ErrInvalidEntityKind, kind)
	}
	return nil
}

// ValidateFeedback validates a feedback event according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Selected suggestion must not be empty
//   - Rating must be on the 1-5 scale
//
// Unknown user IDs are valid: feedback implicitly creates personalization
// state for new users.
func ValidateFeedback(query, suggestion string, rating int) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrEmptyQuery)
	}
	if strings.TrimSpace(suggestion) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrEmptySuggestion)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidFeedback, ErrInvalidRating, rating)
	}
	return nil
}
