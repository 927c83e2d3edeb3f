// Package chi is the HTTP surface over the matching core: sync, match, and
// health endpoints plus the bearer-token middleware.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/db"
	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
	"github.com/kailas-cloud/matchdex/internal/domain/syncreport"
	logpkg "github.com/kailas-cloud/matchdex/internal/logger"
	healthuc "github.com/kailas-cloud/matchdex/internal/usecase/health"
)

// syncService is the sync orchestrator surface consumed by the server (ISP).
type syncService interface {
	SyncOne(ctx context.Context, typ entity.Type, id string) error
	SyncAll(ctx context.Context, typ entity.Type) (*syncreport.Report, error)
	Remove(ctx context.Context, typ entity.Type, id string) error
}

// matchService is the match query surface consumed by the server (ISP).
type matchService interface {
	JobsForCandidate(ctx context.Context, candidateID string, limit int, filters matchfilter.JobFilters) ([]match.Result, error)
	CandidatesForJob(ctx context.Context, jobID string, limit int, filters matchfilter.CandidateFilters) ([]match.Result, error)
}

// healthService reports aggregated component health.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server wires the use case services into chi routes.
type Server struct {
	sync   syncService
	match  matchService
	health healthService
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(sync syncService, match matchService, health healthService, logger *zap.Logger) *Server {
	return &Server{sync: sync, match: match, health: health, logger: logger}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/sync/{type}", s.handleSyncAll)
		r.Post("/sync/{type}/{id}", s.handleSyncOne)
		r.Delete("/index/{type}/{id}", s.handleRemove)
		r.Get("/candidates/{id}/matches", s.handleJobsForCandidate)
		r.Get("/jobs/{id}/matches", s.handleCandidatesForJob)
	})
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

func (s *Server) handleSyncOne(w http.ResponseWriter, r *http.Request) {
	typ, ok := s.entityType(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.sync.SyncOne(r.Context(), typ, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"entity_type": string(typ),
		"id":          id,
		"status":      "synced",
	})
}

func (s *Server) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	typ, ok := s.entityType(w, r)
	if !ok {
		return
	}

	report, err := s.sync.SyncAll(r.Context(), typ)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToResponse(typ, report))
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	typ, ok := s.entityType(w, r)
	if !ok {
		return
	}

	if err := s.sync.Remove(r.Context(), typ, chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleJobsForCandidate(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	filters, err := jobFiltersFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	results, err := s.match.JobsForCandidate(r.Context(), chi.URLParam(r, "id"), limit, filters)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

func (s *Server) handleCandidatesForJob(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	filters, err := candidateFiltersFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	results, err := s.match.CandidatesForJob(r.Context(), chi.URLParam(r, "id"), limit, filters)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// entityType parses the {type} URL param; writes a 400 on failure.
func (s *Server) entityType(w http.ResponseWriter, r *http.Request) (entity.Type, bool) {
	typ, err := entity.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnknownEntityType, safeDomainMessage(err))
		return "", false
	}
	return typ, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logpkg.FromContext(r.Context()).Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)

	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, codeValidationFailed, msg)
	case errors.Is(err, domain.ErrUnknownEntityType):
		writeError(w, http.StatusBadRequest, codeUnknownEntityType, msg)
	case errors.Is(err, domain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, codeRecordNotFound, msg)
	case errors.Is(err, domain.ErrNotSynced):
		writeError(w, http.StatusConflict, codeNotSynced, msg)
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		writeError(w, http.StatusBadGateway, codeEmbeddingProviderError, msg)
	case isDBError(err):
		writeError(w, http.StatusBadGateway, codeIndexUnavailable, msg)
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func isDBError(err error) bool {
	var dbErr *db.Error
	return errors.As(err, &dbErr)
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidID,
		domain.ErrInvalidFilter,
		domain.ErrUnknownEntityType,
		domain.ErrRecordNotFound,
		domain.ErrNotSynced,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	if isDBError(err) {
		return "index unavailable"
	}
	return "internal error"
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be an integer")
	}
	return limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
