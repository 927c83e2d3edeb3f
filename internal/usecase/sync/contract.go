package sync

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

// RelationalStore reads candidate and job records from the source of truth.
// The sync orchestrator never writes to it.
type RelationalStore interface {
	GetCandidate(ctx context.Context, id string) (entity.Candidate, error)
	GetJob(ctx context.Context, id string) (entity.Job, error)
	ListCandidates(ctx context.Context) ([]entity.Candidate, error)
	ListOpenJobs(ctx context.Context) ([]entity.Job, error)
}

// Index is the per-entity-type vector index the orchestrator writes to.
type Index interface {
	Upsert(ctx context.Context, id string, vector []float32, meta domain.Metadata, document string) error
	Delete(ctx context.Context, id string) error
}

// Embedder vectorizes canonical text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
