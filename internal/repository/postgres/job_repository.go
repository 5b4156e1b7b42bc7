package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"jobport/internal/common"
	"jobport/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, recruiter_id, title, company, tags, job_role, min_salary, max_salary, salary_type,
	education, experience, job_type, job_level, vacancies, expiration_date,
	location_country, location_city, is_remote, benefits, description, apply_method, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		posting.ID, posting.RecruiterID, posting.Title, posting.Company, pq.Array(posting.Tags), posting.Role,
		posting.MinSalary, posting.MaxSalary, posting.SalaryType, posting.Education, posting.Experience,
		posting.JobType, posting.JobLevel, posting.Vacancies, posting.ExpirationDate,
		posting.LocationCountry, posting.LocationCity, posting.IsRemote, pq.Array(posting.Benefits),
		posting.Description, posting.ApplyMethod, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, company = $2, tags = $3, job_role = $4,
		min_salary = $5, max_salary = $6, salary_type = $7, education = $8, experience = $9,
		job_type = $10, job_level = $11, vacancies = $12, expiration_date = $13,
		location_country = $14, location_city = $15, is_remote = $16, benefits = $17,
		description = $18, apply_method = $19, updated_at = $20
		WHERE id = $21`,
		posting.Title, posting.Company, pq.Array(posting.Tags), posting.Role,
		posting.MinSalary, posting.MaxSalary, posting.SalaryType, posting.Education, posting.Experience,
		posting.JobType, posting.JobLevel, posting.Vacancies, posting.ExpirationDate,
		posting.LocationCountry, posting.LocationCity, posting.IsRemote, pq.Array(posting.Benefits),
		posting.Description, posting.ApplyMethod, posting.UpdatedAt, posting.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &posting, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	var posting job.Job
	if err := scanJob(row.Scan, &posting); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &posting, nil
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}

func (r *JobRepository) CountByRecruiter(ctx context.Context, recruiterID common.UUID) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count recruiter jobs", err)
	}
	return count, nil
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var posting job.Job
		if err := scanJob(rows.Scan, &posting); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, posting)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read jobs", err)
	}
	return items, nil
}

func scanJob(scan func(dest ...any) error, posting *job.Job) error {
	return scan(&posting.ID, &posting.RecruiterID, &posting.Title, &posting.Company, pq.Array(&posting.Tags), &posting.Role,
		&posting.MinSalary, &posting.MaxSalary, &posting.SalaryType, &posting.Education, &posting.Experience,
		&posting.JobType, &posting.JobLevel, &posting.Vacancies, &posting.ExpirationDate,
		&posting.LocationCountry, &posting.LocationCity, &posting.IsRemote, pq.Array(&posting.Benefits),
		&posting.Description, &posting.ApplyMethod, &posting.CreatedAt, &posting.UpdatedAt)
}
