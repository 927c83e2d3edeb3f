package entity

// JobStatus is a job's lifecycle state in the relational store.
type JobStatus string

const (
	// JobOpen is an active, searchable job.
	JobOpen JobStatus = "open"
	// JobFilled is a filled job, excluded from the searchable index.
	JobFilled JobStatus = "filled"
	// JobClosed is a withdrawn job, excluded from the searchable index.
	JobClosed JobStatus = "closed"
)

// Job is a job position record as read from the relational store.
type Job struct {
	ID              string
	Title           string
	Company         string
	Description     string
	RequiredSkills  []string
	PreferredSkills []string
	ExperienceLevel string
	Location        string
	RemoteOK        bool
	EmploymentType  string
	// SalaryMin/SalaryMax are optional relationally; zero means "not stated".
	SalaryMin float64
	SalaryMax float64
	Status    JobStatus
}
