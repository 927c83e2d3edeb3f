package health

import "context"

// DBPinger checks relational store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexProber checks that one vector index is initialized and reachable.
// The probe touches only index metadata, never the embedding API, so an
// unreachable index is distinguishable from an unreachable model.
type IndexProber interface {
	Exists(ctx context.Context) (bool, error)
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
