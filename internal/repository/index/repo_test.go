package index

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/matchdex/internal/db"
	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

const testID = "3f1a9c2e-0000-4000-8000-000000000001"

func testMeta() domain.Metadata {
	return domain.Metadata{
		Tags:     map[string]string{"location": "Istanbul", "skills": "Go,SQL"},
		Numerics: map[string]float64{"experience": 5},
	}
}

func TestUpsert_WritesContentVectorAndMetadata(t *testing.T) {
	var gotKey string
	var gotFields map[string]string
	store := &mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			gotKey = key
			gotFields = fields
			return nil
		},
	}

	repo := New(store, entity.Candidates, 3)
	err := repo.Upsert(context.Background(), testID, []float32{0.1, 0.2, 0.3}, testMeta(), "doc text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "mdx:candidates:"+testID {
		t.Errorf("key = %q", gotKey)
	}
	if gotFields["__content"] != "doc text" {
		t.Errorf("__content = %q", gotFields["__content"])
	}
	if len(gotFields["__vector"]) != 12 {
		t.Errorf("__vector len = %d, want 12", len(gotFields["__vector"]))
	}
	if gotFields["location"] != "Istanbul" {
		t.Errorf("location = %q", gotFields["location"])
	}
	if gotFields["experience"] != "5" {
		t.Errorf("experience = %q", gotFields["experience"])
	}
}

func TestUpsert_FailedWriteKeepsPriorEntry(t *testing.T) {
	entries := make(map[string]map[string]string)
	writes := 0
	dels := 0
	store := &mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			writes++
			if writes == 2 {
				return errors.New("connection reset")
			}
			entries[key] = fields
			return nil
		},
		delFn: func(_ context.Context, key string) error {
			dels++
			delete(entries, key)
			return nil
		},
		hgetAllFn: func(_ context.Context, key string) (map[string]string, error) {
			return entries[key], nil
		},
	}

	repo := New(store, entity.Candidates, 1)
	ctx := context.Background()

	if err := repo.Upsert(ctx, testID, []float32{0.1}, testMeta(), "doc v1"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, testID, []float32{0.2}, testMeta(), "doc v2"); err == nil {
		t.Fatal("expected error from failed write")
	}

	if dels != 0 {
		t.Errorf("upsert issued %d deletes, want 0", dels)
	}
	doc, _, err := repo.Get(ctx, testID)
	if err != nil {
		t.Fatalf("prior entry lost after failed write: %v", err)
	}
	if doc != "doc v1" {
		t.Errorf("document = %q, want surviving v1 entry", doc)
	}
}

func TestUpsert_DimensionMismatch(t *testing.T) {
	repo := New(&mockStore{}, entity.Candidates, 3)
	err := repo.Upsert(context.Background(), testID, []float32{0.1}, testMeta(), "doc")
	if err == nil || !strings.Contains(err.Error(), "dimension mismatch") {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
}

func TestGet_ReturnsDocumentAndMetadata(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{
				"__content":  "stored doc",
				"__vector":   "\x00\x00\x00\x00",
				"location":   "Istanbul",
				"experience": "5",
			}, nil
		},
	}

	repo := New(store, entity.Candidates, 1)
	doc, meta, err := repo.Get(context.Background(), testID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != "stored doc" {
		t.Errorf("document = %q", doc)
	}
	if meta.Tags["location"] != "Istanbul" {
		t.Errorf("tags = %v", meta.Tags)
	}
	if meta.Numerics["experience"] != 5 {
		t.Errorf("numerics = %v", meta.Numerics)
	}
	if _, ok := meta.Tags["__vector"]; ok {
		t.Error("vector leaked into tags")
	}
}

func TestGet_DigitOnlyTagValuesStayTags(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{
				"__content":  "stored doc",
				"name":       "1984",
				"location":   "90210",
				"experience": "5",
			}, nil
		},
	}

	repo := New(store, entity.Candidates, 1)
	_, meta, err := repo.Get(context.Background(), testID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Tags["name"] != "1984" || meta.Tags["location"] != "90210" {
		t.Errorf("digit-only tag values misfiled: tags = %v", meta.Tags)
	}
	if _, ok := meta.Numerics["name"]; ok {
		t.Errorf("name leaked into numerics: %v", meta.Numerics)
	}
	if meta.Numerics["experience"] != 5 {
		t.Errorf("numerics = %v", meta.Numerics)
	}
}

func TestGet_MissingEntryIsNotSynced(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{}, nil
		},
	}

	repo := New(store, entity.Jobs, 1)
	_, _, err := repo.Get(context.Background(), testID)
	if !errors.Is(err, domain.ErrNotSynced) {
		t.Errorf("expected ErrNotSynced, got %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	deletes := 0
	store := &mockStore{
		delFn: func(_ context.Context, _ string) error {
			deletes++
			return nil
		},
	}

	repo := New(store, entity.Jobs, 1)
	for i := 0; i < 2; i++ {
		if err := repo.Delete(context.Background(), testID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if deletes != 2 {
		t.Errorf("deletes = %d, want 2", deletes)
	}
}

func TestQuery_MapsEntriesToResults(t *testing.T) {
	store := &mockStore{
		searchKNNFn: func(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
			if q.IndexName != "mdx:jobs:idx" {
				t.Errorf("index name = %q", q.IndexName)
			}
			if q.K != 10 {
				t.Errorf("k = %d, want 10", q.K)
			}
			return &db.SearchResult{
				Total: 2,
				Entries: []db.SearchEntry{
					{
						Key: "mdx:jobs:" + testID, Score: 0.92, Distance: 0.08,
						Fields: map[string]string{"__content": "job one", "location": "Istanbul"},
					},
					{
						Key: "mdx:jobs:other", Score: 0.81, Distance: 0.19,
						Fields: map[string]string{
							"__content": "job two", "location": "90210", "salary_max": "95000",
						},
					},
				},
			}, nil
		},
	}

	repo := New(store, entity.Jobs, 2)
	results, err := repo.Query(context.Background(), []float32{0.1, 0.2}, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	first := results[0]
	if first.ID() != testID {
		t.Errorf("id = %q", first.ID())
	}
	if first.Score() != 0.92 || first.Distance() != 0.08 {
		t.Errorf("score=%f distance=%f", first.Score(), first.Distance())
	}
	if first.Document() != "job one" {
		t.Errorf("document = %q", first.Document())
	}
	if results[1].Numerics()["salary_max"] != 95000 {
		t.Errorf("numerics = %v", results[1].Numerics())
	}
	if results[1].Tags()["location"] != "90210" {
		t.Errorf("digit-only location misfiled: tags = %v", results[1].Tags())
	}
}

func TestQuery_EmptyResult(t *testing.T) {
	repo := New(&mockStore{}, entity.Jobs, 2)
	results, err := repo.Query(context.Background(), []float32{0.1}, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestEnsureIndex_AlreadyExists(t *testing.T) {
	store := &mockStore{
		createIndexFn: func(_ context.Context, _ *db.IndexDefinition) error {
			return db.ErrIndexExists
		},
	}

	repo := New(store, entity.Candidates, 4)
	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Errorf("EnsureIndex should swallow ErrIndexExists, got %v", err)
	}
}

func TestEnsureIndex_SchemaPerType(t *testing.T) {
	var def *db.IndexDefinition
	store := &mockStore{
		createIndexFn: func(_ context.Context, d *db.IndexDefinition) error {
			def = d
			return nil
		},
	}

	repo := New(store, entity.Jobs, 4).WithHNSW(HNSWConfig{M: 16, EFConstruct: 200})
	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def == nil {
		t.Fatal("CreateIndex not called")
	}
	if def.Name != "mdx:jobs:idx" {
		t.Errorf("index name = %q", def.Name)
	}

	names := make(map[string]bool)
	for _, f := range def.Fields {
		names[f.Name] = true
	}
	for _, want := range []string{"remote_ok", "salary_min", "salary_max", "__content", "__vector"} {
		if !names[want] {
			t.Errorf("schema missing field %q (have %v)", want, names)
		}
	}
}
