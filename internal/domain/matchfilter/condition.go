// Package matchfilter holds the typed filter model for match queries.
// Caller-facing filters (JobFilters, CandidateFilters) are validated once at
// the boundary and translated into index Conditions; loose maps never cross
// the query engine.
package matchfilter

import (
	"fmt"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// MaxConditions is the maximum number of conditions per query.
const MaxConditions = 16

// Condition is a single conjunctive predicate: either an exact tag match or
// a numeric range. All conditions in a query are ANDed; there is no OR and
// no negation.
type Condition struct {
	key       string
	match     string
	rangeExpr *Range
}

// NewMatch creates an exact tag match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required: %w", domain.ErrInvalidFilter)
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q: %w", key, domain.ErrInvalidFilter)
	}
	return Condition{key: key, match: match}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required: %w", domain.ErrInvalidFilter)
	}
	if r.gte == nil && r.lte == nil {
		return Condition{}, fmt.Errorf("range for key %q needs a boundary: %w", key, domain.ErrInvalidFilter)
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// Key returns the metadata field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is a tag match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsRange reports whether this is a numeric range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Range is an inclusive numeric range. Nil boundaries are unbounded.
type Range struct {
	gte *float64
	lte *float64
}

// GTE creates a lower-bounded range (field >= v).
func GTE(v float64) Range { return Range{gte: &v} }

// LTE creates an upper-bounded range (field <= v).
func LTE(v float64) Range { return Range{lte: &v} }

// Lower returns the inclusive lower bound, nil when unbounded.
func (r Range) Lower() *float64 { return r.gte }

// Upper returns the inclusive upper bound, nil when unbounded.
func (r Range) Upper() *float64 { return r.lte }
