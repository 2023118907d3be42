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

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a QueryContext failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyQuery indicates the query text is absent or empty.
	ErrEmptyQuery = errors.New("query text cannot be empty")

	// ErrInvalidEntity indicates an Entity failed validation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyEntityText indicates the entity Text field is empty.
	ErrEmptyEntityText = errors.New("entity text cannot be empty")

	// ErrInvalidEntityKind indicates an invalid EntityKind value.
	ErrInvalidEntityKind = errors.New("invalid entity kind")

	// ErrInvalidFeedback indicates a feedback event failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")

	// ErrEmptySuggestion indicates the selected suggestion text is empty.
	ErrEmptySuggestion = errors.New("selected suggestion cannot be empty")

	// ErrInvalidRating indicates a success rating outside the 1-5 scale.
	ErrInvalidRating = errors.New("success rating must be between 1 and 5")

	// ErrPartialCoordinate indicates only one of latitude/longitude was given.
	ErrPartialCoordinate = errors.New("latitude and longitude must be given together")
)
