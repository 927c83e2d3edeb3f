package entity

// Candidate is a candidate record as read from the relational store.
// The matching core never writes these back.
type Candidate struct {
	ID              string
	Name            string
	Skills          []string
	ExperienceYears int
	Location        string
	Availability    Availability
	// SalaryExpectation is optional relationally; zero means "not stated"
	// and is stored as 0 in index metadata for filter compatibility.
	SalaryExpectation float64
}
