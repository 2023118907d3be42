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


package badger

import "github.com/poiesic/suggest/storage"

// Repositories bundles all BadgerDB-backed repositories sharing one backend.
type Repositories struct {
	Entities  storage.EntityRepository
	Learning  storage.LearningRepository
	Cache     storage.CacheRepository
	Analytics storage.AnalyticsRepository

	backend *Backend
}

// NewRepositories opens a BadgerDB at path and creates all repositories.
// Caller must Close when done.
func NewRepositories(path string) (*Repositories, error) {
	return newRepositories(path, false)
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must Close when done.
func NewMemoryRepositories() (*Repositories, error) {
	return newRepositories("", true)
}

func newRepositories(path string, inMemory bool) (*Repositories, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, err
	}

	entities, err := NewEntityRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	learning, err := NewLearningRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	cache, err := NewCacheRepository(backend)
	if err != nil {
		learning.Close()
		backend.Close()
		return nil, err
	}

	analytics, err := NewAnalyticsRepository(backend)
	if err != nil {
		cache.Close()
		learning.Close()
		backend.Close()
		return nil, err
	}

	return &Repositories{
		Entities:  entities,
		Learning:  learning,
		Cache:     cache,
		Analytics: analytics,
		backend:   backend,
	}, nil
}

// Close closes all repositories and the underlying backend.
func (r *Repositories) Close() error {
	r.Learning.Close()
	r.Cache.Close()
	r.Analytics.Close()
	r.Entities.Close()
	return r.backend.Close()
}
