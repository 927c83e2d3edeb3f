// Package canonical renders entities into the deterministic text and flat
// metadata stored in the vector index. Everything here is a pure function of
// the record: identical field values produce byte-identical output, which is
// what makes re-syncing an unchanged record idempotent.
package canonical

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

// Metadata field names shared by canonicalization, index schemas, and filter
// translation. Candidate side:
const (
	FieldName              = "name"
	FieldSkills            = "skills"
	FieldExperience        = "experience"
	FieldLocation          = "location"
	FieldAvailability      = "availability"
	FieldSalaryExpectation = "salary_expectation"
)

// Job side (FieldLocation is shared):
const (
	FieldTitle           = "title"
	FieldCompany         = "company"
	FieldRequiredSkills  = "required_skills"
	FieldPreferredSkills = "preferred_skills"
	FieldExperienceLevel = "experience_level"
	FieldRemoteOK        = "remote_ok"
	FieldEmploymentType  = "employment_type"
	FieldSalaryMin       = "salary_min"
	FieldSalaryMax       = "salary_max"
)

// ListSeparator joins list-valued fields into a single tag value; the index
// tag separator splits them back on the query side.
const ListSeparator = ","

// CandidateText renders a candidate into one descriptive string: name,
// skills, experience, location, availability, in fixed order.
func CandidateText(c entity.Candidate) string {
	return fmt.Sprintf(
		"%s. Skills: %s. %d years of experience. Location: %s. Availability: %s.",
		c.Name,
		strings.Join(c.Skills, ", "),
		c.ExperienceYears,
		c.Location,
		c.Availability.Phrase(),
	)
}

// CandidateMetadata extracts the flat filterable projection of a candidate.
// An absent salary expectation is stored as 0 so numeric range predicates
// stay applicable; this is a documented policy, not a data correction.
func CandidateMetadata(c entity.Candidate) domain.Metadata {
	return domain.Metadata{
		Tags: map[string]string{
			FieldName:         c.Name,
			FieldSkills:       strings.Join(c.Skills, ListSeparator),
			FieldLocation:     c.Location,
			FieldAvailability: c.Availability.String(),
		},
		Numerics: map[string]float64{
			FieldExperience:        float64(c.ExperienceYears),
			FieldSalaryExpectation: c.SalaryExpectation,
		},
	}
}

// JobText renders a job into one descriptive string: title, company,
// description, required skills, preferred skills, experience level,
// location, remote phrase, employment type, in fixed order.
func JobText(j entity.Job) string {
	return fmt.Sprintf(
		"%s at %s. %s Required skills: %s. Preferred skills: %s. "+
			"Experience level: %s. Location: %s. %s. Employment type: %s.",
		j.Title,
		j.Company,
		j.Description,
		strings.Join(j.RequiredSkills, ", "),
		strings.Join(j.PreferredSkills, ", "),
		j.ExperienceLevel,
		j.Location,
		remotePhrase(j.RemoteOK),
		j.EmploymentType,
	)
}

// JobMetadata extracts the flat filterable projection of a job. Absent
// salary bounds are stored as 0 (same policy as CandidateMetadata).
func JobMetadata(j entity.Job) domain.Metadata {
	return domain.Metadata{
		Tags: map[string]string{
			FieldTitle:           j.Title,
			FieldCompany:         j.Company,
			FieldRequiredSkills:  strings.Join(j.RequiredSkills, ListSeparator),
			FieldPreferredSkills: strings.Join(j.PreferredSkills, ListSeparator),
			FieldExperienceLevel: j.ExperienceLevel,
			FieldLocation:        j.Location,
			FieldRemoteOK:        strconv.FormatBool(j.RemoteOK),
			FieldEmploymentType:  j.EmploymentType,
		},
		Numerics: map[string]float64{
			FieldSalaryMin: j.SalaryMin,
			FieldSalaryMax: j.SalaryMax,
		},
	}
}

// SplitList splits a stored list-valued tag back into its elements.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ListSeparator)
}

func remotePhrase(remoteOK bool) string {
	if remoteOK {
		return "Remote work available"
	}
	return "On-site only"
}
