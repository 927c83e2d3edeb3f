package health

import (
	"context"
	"fmt"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	indexes   map[string]IndexProber
	embedding EmbeddingChecker
}

// New creates a Service. embedding can be nil to skip the model probe.
func New(db DBPinger, indexes map[string]IndexProber, embedding EmbeddingChecker) *Service {
	return &Service{db: db, indexes: indexes, embedding: embedding}
}

// Check runs health checks against all components. None of the checks
// performs an embedding call for the indexes, so the report separates
// "index unreachable" from "model unreachable".
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	for name, idx := range s.indexes {
		key := fmt.Sprintf("index_%s", name)
		if ok, err := idx.Exists(ctx); err != nil || !ok {
			checks[key] = CheckError
		} else {
			checks[key] = CheckOK
		}
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = CheckError
		} else {
			checks["embedding"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
