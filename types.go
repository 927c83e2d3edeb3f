package matchdex

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
	"github.com/kailas-cloud/matchdex/internal/domain/syncreport"
)

// Embedder is the public text vectorization contract.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// JobFilters restricts jobs returned for a candidate. Nil fields are
// unconstrained. SalaryMin/SalaryMax express the candidate's acceptable
// range and are tested for overlap against the job's posted range.
type JobFilters struct {
	Location        *string
	RemoteOK        *bool
	ExperienceLevel *string
	EmploymentType  *string
	SalaryMin       *float64
	SalaryMax       *float64
}

// CandidateFilters restricts candidates returned for a job. Nil fields are
// unconstrained.
type CandidateFilters struct {
	Location      *string
	Availability  *string
	MinExperience *float64
	MaxExperience *float64
	MaxSalary     *float64
}

// Match is one ranked result of a match query.
type Match struct {
	ID       string
	Score    float64
	Distance float64
	Summary  string
	Tags     map[string]string
	Numerics map[string]float64
}

// SyncResult is the outcome for one record in a batch sync.
type SyncResult struct {
	ID  string
	Err error
}

// SyncReport summarizes a batch sync.
type SyncReport struct {
	Attempted int
	Succeeded int
	Failed    []SyncResult
}

func (f JobFilters) toInternal() matchfilter.JobFilters {
	return matchfilter.JobFilters{
		Location:        f.Location,
		RemoteOK:        f.RemoteOK,
		ExperienceLevel: f.ExperienceLevel,
		EmploymentType:  f.EmploymentType,
		SalaryMin:       f.SalaryMin,
		SalaryMax:       f.SalaryMax,
	}
}

func (f CandidateFilters) toInternal() matchfilter.CandidateFilters {
	return matchfilter.CandidateFilters{
		Location:      f.Location,
		Availability:  f.Availability,
		MinExperience: f.MinExperience,
		MaxExperience: f.MaxExperience,
		MaxSalary:     f.MaxSalary,
	}
}

func matchesFromInternal(results []match.Result) []Match {
	out := make([]Match, len(results))
	for i := range results {
		r := &results[i]
		out[i] = Match{
			ID:       r.ID(),
			Score:    r.Score(),
			Distance: r.Distance(),
			Summary:  r.Document(),
			Tags:     r.Tags(),
			Numerics: r.Numerics(),
		}
	}
	return out
}

func reportFromInternal(report *syncreport.Report) SyncReport {
	out := SyncReport{
		Attempted: report.Attempted(),
		Succeeded: report.Succeeded(),
	}
	for _, f := range report.Failed() {
		out.Failed = append(out.Failed, SyncResult{ID: f.ID(), Err: f.Err()})
	}
	return out
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, err
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}
