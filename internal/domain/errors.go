package domain

import "errors"

var (
	// ErrRecordNotFound signals a missing relational record (sync path).
	ErrRecordNotFound = errors.New("record not found")
	// ErrNotSynced signals an entity with no index entry yet (match path).
	ErrNotSynced = errors.New("entity not synced to index")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrInvalidID signals a malformed entity identifier.
	ErrInvalidID = errors.New("invalid entity id")
	// ErrInvalidFilter signals a malformed match filter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnknownEntityType signals an unrecognized entity type name.
	ErrUnknownEntityType = errors.New("unknown entity type")
)
