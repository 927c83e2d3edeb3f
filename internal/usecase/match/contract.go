package match

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
)

// Index reads stored entries and runs filtered KNN queries against one
// entity type's vector index.
type Index interface {
	Get(ctx context.Context, id string) (document string, meta domain.Metadata, err error)
	Query(ctx context.Context, vector []float32, limit int, conds []matchfilter.Condition) ([]match.Result, error)
}

// Embedder vectorizes the stored document into the query vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
