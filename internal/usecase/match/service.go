// Package match ranks opposite-type index entries by vector similarity to a
// source entity, honoring structured metadata filters. Read-only: neither
// the relational store nor the indexes are mutated here.
package match

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
)

// Service runs match queries between the candidate and job indexes.
type Service struct {
	candidates   Index
	jobs         Index
	embed        Embedder
	defaultLimit int
	maxLimit     int
}

// New creates a match service over the two per-type indexes.
func New(candidates, jobs Index, embed Embedder) *Service {
	return &Service{
		candidates:   candidates,
		jobs:         jobs,
		embed:        embed,
		defaultLimit: 10,
		maxLimit:     100,
	}
}

// WithLimits configures the default and maximum result counts.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// JobsForCandidate returns up to limit open jobs ranked by similarity to the
// candidate's stored document. The candidate must be synced; an id with no
// index entry fails with domain.ErrNotSynced regardless of its relational
// state.
func (s *Service) JobsForCandidate(
	ctx context.Context, candidateID string, limit int, filters matchfilter.JobFilters,
) ([]match.Result, error) {
	conds, err := filters.Conditions()
	if err != nil {
		return nil, err
	}
	return s.query(ctx, s.candidates, s.jobs, candidateID, limit, conds)
}

// CandidatesForJob is the symmetric query: candidates ranked by similarity
// to the job's stored document.
func (s *Service) CandidatesForJob(
	ctx context.Context, jobID string, limit int, filters matchfilter.CandidateFilters,
) ([]match.Result, error) {
	conds, err := filters.Conditions()
	if err != nil {
		return nil, err
	}
	return s.query(ctx, s.jobs, s.candidates, jobID, limit, conds)
}

// query embeds the source entity's stored document and runs the filtered
// KNN against the target index. The stored text is re-embedded on every
// query rather than reusing the indexed vector, so the query vector always
// reflects the exact stored document even across embedding model updates
// (the cache layer in front of the embedder absorbs the cost).
func (s *Service) query(
	ctx context.Context, source, target Index,
	id string, limit int, conds []matchfilter.Condition,
) ([]match.Result, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, err
	}
	limit = s.clampLimit(limit)

	document, _, err := source.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.embed.Embed(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("embed query for %s: %w", id, err)
	}

	matches, err := target.Query(ctx, result.Embedding, limit, conds)
	if err != nil {
		return nil, fmt.Errorf("match query for %s: %w", id, err)
	}
	return matches, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}
