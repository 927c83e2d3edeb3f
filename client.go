package matchdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/matchdex/internal/db/redis"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	indexrepo "github.com/kailas-cloud/matchdex/internal/repository/index"
	"github.com/kailas-cloud/matchdex/internal/repository/relational"
	healthuc "github.com/kailas-cloud/matchdex/internal/usecase/health"
	matchuc "github.com/kailas-cloud/matchdex/internal/usecase/match"
	syncuc "github.com/kailas-cloud/matchdex/internal/usecase/sync"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the matchdex embedded client entry point.
type Client struct {
	store  *dbRedis.Store
	pool   *pgxpool.Pool
	sync   *syncuc.Service
	match  *matchuc.Service
	health *healthuc.Service
}

// New creates a matchdex Client and connects to both stores.
// The provided context is used for the initial readiness check and index
// bootstrap.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		dimensions:      1536,
		hnswM:           32,
		hnswEFConstruct: 400,
		defaultLimit:    10,
		maxLimit:        100,
		logger:          zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("matchdex: redis address is required (use WithRedis)")
	}
	if cfg.postgresURL == "" {
		return nil, errors.New("matchdex: postgres url is required (use WithPostgres)")
	}
	if cfg.embedder == nil {
		return nil, errors.New("matchdex: embedder is required (use WithEmbedder)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("matchdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("matchdex: store not ready: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.postgresURL)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("matchdex: create pool: %w", err)
	}

	c, err := wireClient(ctx, store, pool, cfg)
	if err != nil {
		pool.Close()
		store.Close()
		return nil, err
	}
	return c, nil
}

func wireClient(ctx context.Context, store *dbRedis.Store, pool *pgxpool.Pool, cfg *clientConfig) (*Client, error) {
	relRepo := relational.New(pool)
	emb := &embedderAdapter{inner: cfg.embedder}

	hnsw := indexrepo.HNSWConfig{M: cfg.hnswM, EFConstruct: cfg.hnswEFConstruct}
	candIdx := indexrepo.New(store, entity.Candidates, cfg.dimensions).WithHNSW(hnsw)
	jobIdx := indexrepo.New(store, entity.Jobs, cfg.dimensions).WithHNSW(hnsw)

	for _, idx := range []*indexrepo.Repo{candIdx, jobIdx} {
		if err := idx.EnsureIndex(ctx); err != nil {
			return nil, fmt.Errorf("matchdex: ensure index %s: %w", idx.Type(), err)
		}
	}

	return &Client{
		store: store,
		pool:  pool,
		sync:  syncuc.New(relRepo, candIdx, jobIdx, emb, cfg.logger),
		match: matchuc.New(candIdx, jobIdx, emb).WithLimits(cfg.defaultLimit, cfg.maxLimit),
		health: healthuc.New(relRepo, map[string]healthuc.IndexProber{
			string(entity.Candidates): candIdx,
			string(entity.Jobs):       jobIdx,
		}, embeddingChecker(cfg.embedder)),
	}, nil
}

// embeddingChecker exposes the embedder's health probe to the health service
// when the implementation has one.
func embeddingChecker(e Embedder) healthuc.EmbeddingChecker {
	if hc, ok := e.(interface{ HealthCheck(context.Context) error }); ok {
		return hc
	}
	return nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks vector index store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// SyncCandidate regenerates the index entry for one candidate.
func (c *Client) SyncCandidate(ctx context.Context, id string) error {
	return c.sync.SyncOne(ctx, entity.Candidates, id)
}

// SyncJob regenerates the index entry for one job. Jobs that are no longer
// open are removed from the index instead.
func (c *Client) SyncJob(ctx context.Context, id string) error {
	return c.sync.SyncOne(ctx, entity.Jobs, id)
}

// SyncAllCandidates syncs every relational candidate, skipping failures.
func (c *Client) SyncAllCandidates(ctx context.Context) (SyncReport, error) {
	report, err := c.sync.SyncAll(ctx, entity.Candidates)
	if err != nil {
		return SyncReport{}, err
	}
	return reportFromInternal(report), nil
}

// SyncAllJobs syncs every open relational job, skipping failures.
func (c *Client) SyncAllJobs(ctx context.Context) (SyncReport, error) {
	report, err := c.sync.SyncAll(ctx, entity.Jobs)
	if err != nil {
		return SyncReport{}, err
	}
	return reportFromInternal(report), nil
}

// RemoveCandidate deletes a candidate's index entry. The relational record
// is untouched.
func (c *Client) RemoveCandidate(ctx context.Context, id string) error {
	return c.sync.Remove(ctx, entity.Candidates, id)
}

// RemoveJob deletes a job's index entry.
func (c *Client) RemoveJob(ctx context.Context, id string) error {
	return c.sync.Remove(ctx, entity.Jobs, id)
}

// JobsForCandidate returns open jobs ranked by similarity to the candidate.
// The candidate must have been synced; use errors.Is with ErrNotSynced.
func (c *Client) JobsForCandidate(ctx context.Context, candidateID string, limit int, filters JobFilters) ([]Match, error) {
	results, err := c.match.JobsForCandidate(ctx, candidateID, limit, filters.toInternal())
	if err != nil {
		return nil, err
	}
	return matchesFromInternal(results), nil
}

// CandidatesForJob returns candidates ranked by similarity to the job.
func (c *Client) CandidatesForJob(ctx context.Context, jobID string, limit int, filters CandidateFilters) ([]Match, error) {
	results, err := c.match.CandidatesForJob(ctx, jobID, limit, filters.toInternal())
	if err != nil {
		return nil, err
	}
	return matchesFromInternal(results), nil
}

// Health reports per-component availability.
func (c *Client) Health(ctx context.Context) (string, map[string]string) {
	report := c.health.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return string(report.Status), checks
}
