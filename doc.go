// Package matchdex provides an embedded Go client for the matchdex
// candidate/job semantic matching core, backed by Redis with search modules
// and a PostgreSQL source of truth.
//
// The client wires the same sync and match services the HTTP server uses,
// without the HTTP layer in between:
//
//	client, _ := matchdex.New(ctx,
//	    matchdex.WithRedis("localhost:6379", ""),
//	    matchdex.WithPostgres("postgres://localhost:5432/matchdex"),
//	    matchdex.WithEmbedder(emb),
//	    matchdex.WithDimensions(1536),
//	)
//	defer client.Close()
//
//	_ = client.SyncCandidate(ctx, candidateID)
//	matches, _ := client.JobsForCandidate(ctx, candidateID, 10, matchdex.JobFilters{})
package matchdex
