package ingest

import "errors"

var (
	// ErrEntityRepositoryRequired indicates no entity repository was provided.
	ErrEntityRepositoryRequired = errors.New("entity repository is required")

	// ErrEmbedderRequired indicates no embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidMaxAttempts indicates a retry attempt count below one.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
