package db

import (
	"context"
	"time"

	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
)

// Store is the full vector store contract. Repositories consume narrower
// interfaces; this one is implemented by the redis driver and wired in main.
type Store interface {
	Ping(ctx context.Context) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)

	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
}

// KNNQuery describes a filtered nearest-neighbor search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	Filters      []matchfilter.Condition
	ReturnFields []string
}

// SearchResult is a parsed FT.SEARCH response.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single FT.SEARCH hit. Score is the fixed transform
// max(0, 1 - Distance) for a cosine-distance index.
type SearchEntry struct {
	Key      string
	Score    float64
	Distance float64
	Fields   map[string]string
}
