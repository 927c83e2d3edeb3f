// Package relational reads candidate and job records from the relational
// source of truth. The matching core never writes back; CRUD belongs to the
// applications service that owns the schema.
package relational

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
)

const candidateColumns = `id, name, skills, experience_years, location,
	availability, COALESCE(salary_expectation, 0)`

const jobColumns = `id, title, company, description, required_skills,
	preferred_skills, experience_level, location, remote_ok, employment_type,
	COALESCE(salary_min, 0), COALESCE(salary_max, 0), status`

// Repo implements read-only access over a pgx connection pool.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a relational repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping relational store: %w", err)
	}
	return nil
}

// GetCandidate loads one candidate by id.
func (r *Repo) GetCandidate(ctx context.Context, id string) (entity.Candidate, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM candidates WHERE id = $1", candidateColumns), id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Candidate{}, fmt.Errorf("candidate %s: %w", id, domain.ErrRecordNotFound)
		}
		return entity.Candidate{}, fmt.Errorf("get candidate %s: %w", id, err)
	}
	return c, nil
}

// GetJob loads one job by id, regardless of status. Status filtering is a
// collection-sync concern; a single-entity sync of a filled job is allowed
// (removal is an explicit call).
func (r *Repo) GetJob(ctx context.Context, id string) (entity.Job, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM jobs WHERE id = $1", jobColumns), id)

	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Job{}, fmt.Errorf("job %s: %w", id, domain.ErrRecordNotFound)
		}
		return entity.Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	return j, nil
}

// ListCandidates enumerates all candidates in stable id order.
func (r *Repo) ListCandidates(ctx context.Context) ([]entity.Candidate, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM candidates ORDER BY id", candidateColumns))
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []entity.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

// ListOpenJobs enumerates jobs in the open state, in stable id order.
// Filled and closed jobs are intentionally excluded from the searchable
// index.
func (r *Repo) ListOpenJobs(ctx context.Context) ([]entity.Job, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM jobs WHERE status = $1 ORDER BY id", jobColumns),
		string(entity.JobOpen))
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}
	defer rows.Close()

	var jobs []entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}
	return jobs, nil
}

func scanCandidate(row pgx.Row) (entity.Candidate, error) {
	var c entity.Candidate
	var availability string

	err := row.Scan(
		&c.ID, &c.Name, &c.Skills, &c.ExperienceYears, &c.Location,
		&availability, &c.SalaryExpectation,
	)
	if err != nil {
		return entity.Candidate{}, err
	}

	// Unknown availability codes are flagged here rather than defaulted so
	// data-entry bugs fail the sync of that one record.
	c.Availability, err = entity.ParseAvailability(availability)
	if err != nil {
		return entity.Candidate{}, fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	return c, nil
}

func scanJob(row pgx.Row) (entity.Job, error) {
	var j entity.Job
	var status string

	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Description, &j.RequiredSkills,
		&j.PreferredSkills, &j.ExperienceLevel, &j.Location, &j.RemoteOK,
		&j.EmploymentType, &j.SalaryMin, &j.SalaryMax, &status,
	)
	if err != nil {
		return entity.Job{}, err
	}

	j.Status = entity.JobStatus(status)
	return j, nil
}
