// Package mock provides a deterministic in-memory implementation of
// ai.Embedder for testing. Identical texts always produce identical
// unit vectors, so ranking tests are reproducible without a network
// embedding service.
package mock
