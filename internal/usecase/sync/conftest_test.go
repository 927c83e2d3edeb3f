package sync

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

type mockStore struct {
	getCandidateFn   func(ctx context.Context, id string) (entity.Candidate, error)
	getJobFn         func(ctx context.Context, id string) (entity.Job, error)
	listCandidatesFn func(ctx context.Context) ([]entity.Candidate, error)
	listOpenJobsFn   func(ctx context.Context) ([]entity.Job, error)
}

func (m *mockStore) GetCandidate(ctx context.Context, id string) (entity.Candidate, error) {
	if m.getCandidateFn != nil {
		return m.getCandidateFn(ctx, id)
	}
	return entity.Candidate{}, domain.ErrRecordNotFound
}

func (m *mockStore) GetJob(ctx context.Context, id string) (entity.Job, error) {
	if m.getJobFn != nil {
		return m.getJobFn(ctx, id)
	}
	return entity.Job{}, domain.ErrRecordNotFound
}

func (m *mockStore) ListCandidates(ctx context.Context) ([]entity.Candidate, error) {
	if m.listCandidatesFn != nil {
		return m.listCandidatesFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) ListOpenJobs(ctx context.Context) ([]entity.Job, error) {
	if m.listOpenJobsFn != nil {
		return m.listOpenJobsFn(ctx)
	}
	return nil, nil
}

type mockIndex struct {
	upsertFn func(ctx context.Context, id string, vector []float32, meta domain.Metadata, document string) error
	deleteFn func(ctx context.Context, id string) error

	upserts []string
	deletes []string
}

func (m *mockIndex) Upsert(
	ctx context.Context, id string, vector []float32,
	meta domain.Metadata, document string,
) error {
	m.upserts = append(m.upserts, id)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, id, vector, meta, document)
	}
	return nil
}

func (m *mockIndex) Delete(ctx context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockEmbedder struct {
	embedFn func(ctx context.Context, text string) (domain.EmbeddingResult, error)
	calls   int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}, TotalTokens: 5}, nil
}

type testDeps struct {
	store   *mockStore
	candIdx *mockIndex
	jobIdx  *mockIndex
	embed   *mockEmbedder
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		store:   &mockStore{},
		candIdx: &mockIndex{},
		jobIdx:  &mockIndex{},
		embed:   &mockEmbedder{},
	}
	svc := New(deps.store, deps.candIdx, deps.jobIdx, deps.embed, zap.NewNop())
	return svc, deps
}

func testCandidate(id string) entity.Candidate {
	return entity.Candidate{
		ID:              id,
		Name:            "Deniz Kaya",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 5,
		Location:        "Istanbul",
		Availability:    entity.AvailableImmediately,
	}
}

func testJob(id string) entity.Job {
	return entity.Job{
		ID:              id,
		Title:           "Backend Engineer",
		Company:         "Acme",
		RequiredSkills:  []string{"Go"},
		ExperienceLevel: "mid",
		Location:        "Istanbul",
		RemoteOK:        true,
		EmploymentType:  "full_time",
		Status:          entity.JobOpen,
	}
}
