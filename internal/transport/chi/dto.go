package chi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
	"github.com/kailas-cloud/matchdex/internal/domain/matchfilter"
	"github.com/kailas-cloud/matchdex/internal/domain/syncreport"
	healthuc "github.com/kailas-cloud/matchdex/internal/usecase/health"
)

type errorCode string

const (
	codeValidationFailed       errorCode = "validation_failed"
	codeUnknownEntityType      errorCode = "unknown_entity_type"
	codeRecordNotFound         errorCode = "record_not_found"
	codeNotSynced              errorCode = "not_synced"
	codeEmbeddingProviderError errorCode = "embedding_provider_error"
	codeIndexUnavailable       errorCode = "index_unavailable"
	codeInternalError          errorCode = "internal_error"
	codeBadRequest             errorCode = "bad_request"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

type syncResultItem struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

type syncReportResponse struct {
	EntityType string           `json:"entity_type"`
	Attempted  int              `json:"attempted"`
	Succeeded  int              `json:"succeeded"`
	Failed     []syncResultItem `json:"failed,omitempty"`
}

func reportToResponse(typ entity.Type, report *syncreport.Report) syncReportResponse {
	resp := syncReportResponse{
		EntityType: string(typ),
		Attempted:  report.Attempted(),
		Succeeded:  report.Succeeded(),
	}
	for _, f := range report.Failed() {
		resp.Failed = append(resp.Failed, syncResultItem{ID: f.ID(), Error: f.Err().Error()})
	}
	return resp
}

type matchItem struct {
	ID       string             `json:"id"`
	Score    float64            `json:"score"`
	Distance float64            `json:"distance"`
	Summary  string             `json:"summary"`
	Tags     map[string]string  `json:"tags,omitempty"`
	Numerics map[string]float64 `json:"numerics,omitempty"`
}

type matchListResponse struct {
	Items []matchItem `json:"items"`
	Total int         `json:"total"`
}

func matchesToResponse(results []match.Result) matchListResponse {
	items := make([]matchItem, len(results))
	for i := range results {
		r := &results[i]
		items[i] = matchItem{
			ID:       r.ID(),
			Score:    r.Score(),
			Distance: r.Distance(),
			Summary:  r.Document(),
			Tags:     r.Tags(),
			Numerics: r.Numerics(),
		}
	}
	return matchListResponse{Items: items, Total: len(items)}
}

// jobFiltersFromQuery parses the job-side filter query params for a
// candidate match request. Unknown params are ignored; malformed values on
// known params are rejected.
func jobFiltersFromQuery(r *http.Request) (matchfilter.JobFilters, error) {
	q := r.URL.Query()
	var f matchfilter.JobFilters

	if v := q.Get("location"); v != "" {
		f.Location = &v
	}
	if v := q.Get("remote_ok"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return matchfilter.JobFilters{}, fmt.Errorf("remote_ok must be a boolean")
		}
		f.RemoteOK = &b
	}
	if v := q.Get("experience_level"); v != "" {
		f.ExperienceLevel = &v
	}
	if v := q.Get("employment_type"); v != "" {
		f.EmploymentType = &v
	}

	var err error
	if f.SalaryMin, err = floatParam(q.Get("salary_min"), "salary_min"); err != nil {
		return matchfilter.JobFilters{}, err
	}
	if f.SalaryMax, err = floatParam(q.Get("salary_max"), "salary_max"); err != nil {
		return matchfilter.JobFilters{}, err
	}
	return f, nil
}

// candidateFiltersFromQuery parses the candidate-side filter query params
// for a job match request.
func candidateFiltersFromQuery(r *http.Request) (matchfilter.CandidateFilters, error) {
	q := r.URL.Query()
	var f matchfilter.CandidateFilters

	if v := q.Get("location"); v != "" {
		f.Location = &v
	}
	if v := q.Get("availability"); v != "" {
		f.Availability = &v
	}

	var err error
	if f.MinExperience, err = floatParam(q.Get("min_experience"), "min_experience"); err != nil {
		return matchfilter.CandidateFilters{}, err
	}
	if f.MaxExperience, err = floatParam(q.Get("max_experience"), "max_experience"); err != nil {
		return matchfilter.CandidateFilters{}, err
	}
	if f.MaxSalary, err = floatParam(q.Get("max_salary"), "max_salary"); err != nil {
		return matchfilter.CandidateFilters{}, err
	}
	return f, nil
}

func floatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &v, nil
}
