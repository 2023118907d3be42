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


// Package rank implements the suggestion scoring pipeline: candidate
// generation from the site-data snapshot, BM25 lexical scoring, embedding
// based semantic scoring, and multi-signal fusion with personalization,
// history, geography, and business-rule boosts.
//
// The pipeline for one request:
//
//  1. Generate expands the query (synonym table, block/allow lists) into a
//     deduplicated candidate set; an empty snapshot yields an empty set.
//  2. Lexical and semantic scorers annotate candidates independently.
//     Document statistics are recomputed per request; candidate embeddings
//     are memoized in a bounded LRU. An embedder failure degrades the
//     request to lexical-only scoring.
//  3. Fusion combines the signals and applies boosts and the radius hard
//     filter, with deterministic tie-breaks.
//  4. The renderer instantiates intent templates for the top candidates and
//     emits member cards; below-threshold results fall back to the cold
//     start set, which is never empty.
//
// A Ranker is safe for concurrent use and mutates no persistent state;
// learned profiles are consulted read-only during fusion.
package rank
