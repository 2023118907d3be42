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


// Package ai defines the embedding abstraction used for semantic
// suggestion scoring, along with provider configuration.
//
// The package contains only interfaces and configuration; concrete
// implementations live in subpackages:
//
//   - ai/openai: OpenAI-compatible embedding services (Ollama, LocalAI,
//     vLLM, or the OpenAI API itself)
//   - ai/mock: deterministic in-memory embedder for testing
//
// Embedding calls are always bounded by the configured Timeout. Callers
// treat embedder errors as a signal to degrade to lexical-only scoring
// rather than failing the request.
package ai
