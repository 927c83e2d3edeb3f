package matchdex

import "github.com/kailas-cloud/matchdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrRecordNotFound         = domain.ErrRecordNotFound
	ErrNotSynced              = domain.ErrNotSynced
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
	ErrInvalidID              = domain.ErrInvalidID
	ErrInvalidFilter          = domain.ErrInvalidFilter
	ErrUnknownEntityType      = domain.ErrUnknownEntityType
)
