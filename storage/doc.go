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


// Package storage provides the storage abstraction layer for suggest.
//
// This package defines repository interfaces that decouple storage
// implementation from ranking and learning logic. Different backends
// (BadgerDB, Redis, in-memory) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	repos, err := badger.NewRepositories(path)  // returns storage interfaces
//
// Internal package constructors may return concrete types since they're
// only used within the implementation package.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - EntityRepository: site-data entities, synonym rules, block/allow lists
//   - LearningRepository: per-user learned profiles and the interaction log
//   - CacheRepository: TTL suggestion cache keyed by request fingerprint
//   - AnalyticsRepository: popularity counters for queries and suggestions
//
// # Usage
//
// Create repositories backed by a local BadgerDB:
//
//	repos, err := badger.NewRepositories("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repos.Close()
//
// Use in tests with in-memory storage:
//
//	repos, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage
