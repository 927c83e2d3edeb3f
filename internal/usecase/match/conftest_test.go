package match

import (
	"context"
	"testing"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
)

type mockIndex struct {
	getFn   func(ctx context.Context, id string) (string, domain.Metadata, error)
	queryFn func(ctx context.Context, vector []float32, limit int, conds []matchfilter.Condition) ([]match.Result, error)

	queryCalls int
	lastLimit  int
	lastConds  []matchfilter.Condition
}

func (m *mockIndex) Get(ctx context.Context, id string) (string, domain.Metadata, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return "", domain.Metadata{}, domain.ErrNotSynced
}

func (m *mockIndex) Query(
	ctx context.Context, vector []float32, limit int,
	conds []matchfilter.Condition,
) ([]match.Result, error) {
	m.queryCalls++
	m.lastLimit = limit
	m.lastConds = conds
	if m.queryFn != nil {
		return m.queryFn(ctx, vector, limit, conds)
	}
	return nil, nil
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
	return domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}, nil
}

type testDeps struct {
	candIdx *mockIndex
	jobIdx  *mockIndex
	embed   *mockEmbedder
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		candIdx: &mockIndex{},
		jobIdx:  &mockIndex{},
		embed:   &mockEmbedder{},
	}
	svc := New(deps.candIdx, deps.jobIdx, deps.embed)
	return svc, deps
}
