package matchfilter

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/canonical"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

// JobFilters restricts jobs returned for a candidate. Nil fields are
// unconstrained.
type JobFilters struct {
	Location        *string
	RemoteOK        *bool
	ExperienceLevel *string
	EmploymentType  *string
	// SalaryMin is the candidate's minimum acceptable salary; it translates
	// to "job's salary_max >= SalaryMin". SalaryMax is the candidate's upper
	// bound and translates to "job's salary_min <= SalaryMax". Together they
	// form an overlap test between the two ranges, not an equality.
	SalaryMin *float64
	SalaryMax *float64
}

// Conditions translates the filters into index predicates.
func (f JobFilters) Conditions() ([]Condition, error) {
	var conds []Condition

	if f.Location != nil {
		c, err := NewMatch(canonical.FieldLocation, *f.Location)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.RemoteOK != nil {
		c, err := NewMatch(canonical.FieldRemoteOK, strconv.FormatBool(*f.RemoteOK))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.ExperienceLevel != nil {
		c, err := NewMatch(canonical.FieldExperienceLevel, *f.ExperienceLevel)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.EmploymentType != nil {
		c, err := NewMatch(canonical.FieldEmploymentType, *f.EmploymentType)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.SalaryMin != nil {
		if *f.SalaryMin < 0 {
			return nil, fmt.Errorf("salary_min must be non-negative: %w", domain.ErrInvalidFilter)
		}
		c, err := NewRange(canonical.FieldSalaryMax, GTE(*f.SalaryMin))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.SalaryMax != nil {
		if *f.SalaryMax < 0 {
			return nil, fmt.Errorf("salary_max must be non-negative: %w", domain.ErrInvalidFilter)
		}
		c, err := NewRange(canonical.FieldSalaryMin, LTE(*f.SalaryMax))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}

	if len(conds) > MaxConditions {
		return nil, fmt.Errorf("too many conditions (max %d): %w", MaxConditions, domain.ErrInvalidFilter)
	}
	return conds, nil
}

// CandidateFilters restricts candidates returned for a job. Nil fields are
// unconstrained.
type CandidateFilters struct {
	Location      *string
	Availability  *string
	MinExperience *float64
	MaxExperience *float64
	// MaxSalary caps the candidate's stated salary expectation.
	MaxSalary *float64
}

// Conditions translates the filters into index predicates.
func (f CandidateFilters) Conditions() ([]Condition, error) {
	var conds []Condition

	if f.Location != nil {
		c, err := NewMatch(canonical.FieldLocation, *f.Location)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.Availability != nil {
		a, err := entity.ParseAvailability(*f.Availability)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err)
		}
		c, err := NewMatch(canonical.FieldAvailability, a.String())
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.MinExperience != nil {
		if *f.MinExperience < 0 {
			return nil, fmt.Errorf("min_experience must be non-negative: %w", domain.ErrInvalidFilter)
		}
		c, err := NewRange(canonical.FieldExperience, GTE(*f.MinExperience))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.MaxExperience != nil {
		if f.MinExperience != nil && *f.MaxExperience < *f.MinExperience {
			return nil, fmt.Errorf("max_experience below min_experience: %w", domain.ErrInvalidFilter)
		}
		c, err := NewRange(canonical.FieldExperience, LTE(*f.MaxExperience))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if f.MaxSalary != nil {
		if *f.MaxSalary < 0 {
			return nil, fmt.Errorf("max_salary must be non-negative: %w", domain.ErrInvalidFilter)
		}
		c, err := NewRange(canonical.FieldSalaryExpectation, LTE(*f.MaxSalary))
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}

	if len(conds) > MaxConditions {
		return nil, fmt.Errorf("too many conditions (max %d): %w", MaxConditions, domain.ErrInvalidFilter)
	}
	return conds, nil
}
