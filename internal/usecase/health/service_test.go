package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockIndexProber struct {
	exists bool
	err    error
}

func (m *mockIndexProber) Exists(_ context.Context) (bool, error) { return m.exists, m.err }

type mockEmbeddingChecker struct {
	err error
}

func (m *mockEmbeddingChecker) HealthCheck(_ context.Context) error { return m.err }

func healthyIndexes() map[string]IndexProber {
	return map[string]IndexProber{
		"candidates": &mockIndexProber{exists: true},
		"jobs":       &mockIndexProber{exists: true},
	}
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, healthyIndexes(), &mockEmbeddingChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	for _, name := range []string{"database", "index_candidates", "index_jobs", "embedding"} {
		if r.Checks[name] != CheckOK {
			t.Errorf("expected %s %q, got %q", name, CheckOK, r.Checks[name])
		}
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, healthyIndexes(), &mockEmbeddingChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if r.Checks["index_candidates"] != CheckOK {
		t.Errorf("expected index_candidates %q, got %q", CheckOK, r.Checks["index_candidates"])
	}
}

func TestCheck_IndexMissing(t *testing.T) {
	indexes := healthyIndexes()
	indexes["jobs"] = &mockIndexProber{exists: false}

	svc := New(&mockDBPinger{}, indexes, &mockEmbeddingChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["index_jobs"] != CheckError {
		t.Errorf("expected index_jobs %q, got %q", CheckError, r.Checks["index_jobs"])
	}
	if r.Checks["index_candidates"] != CheckOK {
		t.Errorf("expected index_candidates %q, got %q", CheckOK, r.Checks["index_candidates"])
	}
}

func TestCheck_IndexProbeError(t *testing.T) {
	indexes := healthyIndexes()
	indexes["candidates"] = &mockIndexProber{err: errors.New("timeout")}

	svc := New(&mockDBPinger{}, indexes, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["index_candidates"] != CheckError {
		t.Errorf("expected index_candidates %q, got %q", CheckError, r.Checks["index_candidates"])
	}
}

func TestCheck_EmbeddingError(t *testing.T) {
	svc := New(&mockDBPinger{}, healthyIndexes(), &mockEmbeddingChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["embedding"] != CheckError {
		t.Errorf("expected embedding %q, got %q", CheckError, r.Checks["embedding"])
	}
	if r.Checks["index_jobs"] != CheckOK {
		t.Errorf("index probes must not depend on the embedding provider")
	}
}

func TestCheck_NoEmbedding(t *testing.T) {
	svc := New(&mockDBPinger{}, healthyIndexes(), nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["embedding"]; ok {
		t.Error("embedding check should be absent when embedding is nil")
	}
}
