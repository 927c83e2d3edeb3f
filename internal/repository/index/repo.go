// Package index implements the per-entity-type vector index over the db
// store: one FT index for candidates, one for jobs, each keyed by entity id
// and carrying the canonical text, the embedding, and the flat metadata.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/matchdex/internal/db"
	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/canonical"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
)

// store is the consumer interface for the vector index (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// HNSWConfig tunes the HNSW graph for the vector field.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// Repo is the vector index for one entity type.
type Repo struct {
	store store
	typ   entity.Type
	dim   int
	hnsw  HNSWConfig
}

// New creates a vector index repository for the given entity type. dim is
// the embedding dimensionality, immutable for the life of the index.
func New(s store, typ entity.Type, dim int) *Repo {
	return &Repo{store: s, typ: typ, dim: dim}
}

// WithHNSW overrides HNSW build parameters.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	r.hnsw = cfg
	return r
}

// Type returns the entity type this index serves.
func (r *Repo) Type() entity.Type { return r.typ }

// EnsureIndex creates the FT index if it does not exist yet. Safe to call on
// every startup.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := r.definition()
	if err != nil {
		return fmt.Errorf("build index definition %s: %w", r.typ, err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", r.indexName(), err)
	}
	return nil
}

// Exists probes the FT index without touching any entity keys.
func (r *Repo) Exists(ctx context.Context) (bool, error) {
	ok, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return false, fmt.Errorf("index info %s: %w", r.indexName(), err)
	}
	return ok, nil
}

// Upsert fully replaces the entry for id. The hash field set is fixed per
// entity type, so a single HSET overwrites every field of any prior entry:
// the replace is atomic with respect to reads of that id, and a failed
// write leaves the prior entry intact for a re-sync.
func (r *Repo) Upsert(
	ctx context.Context, id string, vector []float32,
	meta domain.Metadata, document string,
) error {
	if len(vector) != r.dim {
		return fmt.Errorf("vector dimension mismatch for %s: got %d, want %d",
			id, len(vector), r.dim)
	}

	key := r.entityKey(id)
	if err := r.store.HSet(ctx, key, buildHashFields(vector, meta, document)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Get returns the stored document and metadata for id, or ErrNotSynced if
// the entity has no index entry.
func (r *Repo) Get(ctx context.Context, id string) (string, domain.Metadata, error) {
	key := r.entityKey(id)

	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return "", domain.Metadata{}, fmt.Errorf("get %s: %w", key, err)
	}
	if len(fields) == 0 {
		return "", domain.Metadata{}, fmt.Errorf("%s %s: %w", r.typ, id, domain.ErrNotSynced)
	}

	document, meta := parseHashFields(r.typ, fields)
	return document, meta, nil
}

// Delete removes the entry for id. Idempotent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.entityKey(id)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Query returns up to limit entries ordered by descending similarity to
// vector, restricted to entries satisfying every condition.
func (r *Repo) Query(
	ctx context.Context, vector []float32, limit int,
	conds []matchfilter.Condition,
) ([]match.Result, error) {
	q := &db.KNNQuery{
		IndexName: r.indexName(),
		Vector:    vector,
		K:         limit,
		Filters:   conds,
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.indexName(), err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	results := make([]match.Result, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := r.extractID(entry.Key)
		results = append(results, parseEntry(r.typ, id, entry))
	}
	return results, nil
}

func (r *Repo) entityKey(id string) string {
	return fmt.Sprintf("%s%s:%s", domain.KeyPrefix, r.typ, id)
}

func (r *Repo) indexName() string {
	return fmt.Sprintf("%s%s:idx", domain.KeyPrefix, r.typ)
}

func (r *Repo) extractID(key string) string {
	prefix := fmt.Sprintf("%s%s:", domain.KeyPrefix, r.typ)
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):]
	}
	return key
}

// definition builds the FT schema for this entity type: the shared content
// and vector fields plus the per-type filterable metadata fields.
func (r *Repo) definition() (*db.IndexDefinition, error) {
	b := db.NewIndex(r.indexName()).
		Prefix(fmt.Sprintf("%s%s:", domain.KeyPrefix, r.typ))

	switch r.typ {
	case entity.Candidates:
		b.Tag(canonical.FieldName).
			TagList(canonical.FieldSkills, canonical.ListSeparator).
			Tag(canonical.FieldLocation).
			Tag(canonical.FieldAvailability).
			Numeric(canonical.FieldExperience).
			Numeric(canonical.FieldSalaryExpectation)
	case entity.Jobs:
		b.Tag(canonical.FieldTitle).
			Tag(canonical.FieldCompany).
			TagList(canonical.FieldRequiredSkills, canonical.ListSeparator).
			TagList(canonical.FieldPreferredSkills, canonical.ListSeparator).
			Tag(canonical.FieldExperienceLevel).
			Tag(canonical.FieldLocation).
			Tag(canonical.FieldRemoteOK).
			Tag(canonical.FieldEmploymentType).
			Numeric(canonical.FieldSalaryMin).
			Numeric(canonical.FieldSalaryMax)
	default:
		return nil, fmt.Errorf("%q: %w", r.typ, domain.ErrUnknownEntityType)
	}

	return b.Text(contentField).
		VectorHNSW(vectorField, r.dim, db.DistanceCosine, r.hnsw.M, r.hnsw.EFConstruct).
		Build()
}
