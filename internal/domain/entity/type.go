package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// Type identifies which vector index an entity belongs to.
type Type string

const (
	// Candidates is the candidate entity type.
	Candidates Type = "candidates"
	// Jobs is the job position entity type.
	Jobs Type = "jobs"
)

// ParseType validates an entity type name.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Candidates:
		return Candidates, nil
	case Jobs:
		return Jobs, nil
	default:
		return "", fmt.Errorf("%q: %w", s, domain.ErrUnknownEntityType)
	}
}

// Opposite returns the entity type matched against this one.
func (t Type) Opposite() Type {
	if t == Candidates {
		return Jobs
	}
	return Candidates
}

// ValidateID checks that id is a well-formed UUID. Rejected before any
// external call is made.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%q: %w", id, domain.ErrInvalidID)
	}
	return nil
}
