package matchfilter

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/canonical"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }

func findCond(t *testing.T, conds []Condition, key string) Condition {
	t.Helper()
	for _, c := range conds {
		if c.Key() == key {
			return c
		}
	}
	t.Fatalf("no condition for key %q in %v", key, conds)
	return Condition{}
}

func TestJobFilters_Empty(t *testing.T) {
	conds, err := JobFilters{}.Conditions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conds) != 0 {
		t.Errorf("expected no conditions, got %d", len(conds))
	}
}

func TestJobFilters_EqualityTranslation(t *testing.T) {
	f := JobFilters{
		Location:        strPtr("Istanbul"),
		RemoteOK:        boolPtr(true),
		ExperienceLevel: strPtr("mid"),
		EmploymentType:  strPtr("full_time"),
	}

	conds, err := f.Conditions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conds) != 4 {
		t.Fatalf("expected 4 conditions, got %d", len(conds))
	}

	loc := findCond(t, conds, canonical.FieldLocation)
	if !loc.IsMatch() || loc.Match() != "Istanbul" {
		t.Errorf("location condition = %+v", loc)
	}
	remote := findCond(t, conds, canonical.FieldRemoteOK)
	if remote.Match() != "true" {
		t.Errorf("remote_ok match = %q, want %q", remote.Match(), "true")
	}
}

func TestJobFilters_SalaryOverlap(t *testing.T) {
	// Candidate min 80000 → job's salary_max >= 80000.
	// Candidate max 120000 → job's salary_min <= 120000.
	f := JobFilters{SalaryMin: f64Ptr(80000), SalaryMax: f64Ptr(120000)}

	conds, err := f.Conditions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxCond := findCond(t, conds, canonical.FieldSalaryMax)
	if !maxCond.IsRange() {
		t.Fatalf("salary_max condition is not a range: %+v", maxCond)
	}
	if lo := maxCond.Range().Lower(); lo == nil || *lo != 80000 {
		t.Errorf("salary_max lower bound = %v, want 80000", lo)
	}
	if maxCond.Range().Upper() != nil {
		t.Errorf("salary_max upper bound = %v, want nil", maxCond.Range().Upper())
	}

	minCond := findCond(t, conds, canonical.FieldSalaryMin)
	if hi := minCond.Range().Upper(); hi == nil || *hi != 120000 {
		t.Errorf("salary_min upper bound = %v, want 120000", hi)
	}
}

func TestJobFilters_NegativeSalary(t *testing.T) {
	_, err := JobFilters{SalaryMin: f64Ptr(-1)}.Conditions()
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestCandidateFilters_ExperienceRange(t *testing.T) {
	f := CandidateFilters{MinExperience: f64Ptr(3), MaxExperience: f64Ptr(8)}

	conds, err := f.Conditions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	for _, c := range conds {
		if c.Key() != canonical.FieldExperience {
			t.Errorf("condition key = %q, want %q", c.Key(), canonical.FieldExperience)
		}
	}
}

func TestCandidateFilters_ExperienceBoundsCrossed(t *testing.T) {
	f := CandidateFilters{MinExperience: f64Ptr(8), MaxExperience: f64Ptr(3)}
	_, err := f.Conditions()
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestCandidateFilters_UnknownAvailability(t *testing.T) {
	f := CandidateFilters{Availability: strPtr("whenever")}
	_, err := f.Conditions()
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestCandidateFilters_MaxSalary(t *testing.T) {
	f := CandidateFilters{MaxSalary: f64Ptr(90000)}
	conds, err := f.Conditions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := findCond(t, conds, canonical.FieldSalaryExpectation)
	if hi := c.Range().Upper(); hi == nil || *hi != 90000 {
		t.Errorf("salary_expectation upper bound = %v, want 90000", hi)
	}
}

func TestNewMatch_EmptyValue(t *testing.T) {
	_, err := NewMatch("location", "")
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestNewRange_NoBoundary(t *testing.T) {
	_, err := NewRange("experience", Range{})
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}
