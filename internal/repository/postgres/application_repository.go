package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_id, name, email, phone, resume, cover_letter, status, applied_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		app.ID, app.JobID, app.ApplicantID, app.Name, app.Email, app.Phone, app.Resume, app.CoverLetter, app.Status, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	var app application.Application
	if err := scanApplication(row.Scan, &app); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context, limit int) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY applied_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID, limit int) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY applied_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $2`, applicantID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, applicantID)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applicant applications", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID, limit int) ([]application.Application, error) {
	query := `SELECT a.id, a.job_id, a.applicant_id, a.name, a.email, a.phone, a.resume, a.cover_letter, a.status, a.applied_at, a.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1
		ORDER BY a.applied_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $2`, recruiterID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, recruiterID)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter applications", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	var app application.Application
	if err := scanApplication(row.Scan, &app); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) CountByApplicant(ctx context.Context, applicantID common.UUID, status application.Status) (int, error) {
	var count int
	var err error
	if status == "" {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE applicant_id = $1`, applicantID).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = $2`, applicantID, status).Scan(&count)
	}
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applicant applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) CountByRecruiter(ctx context.Context, recruiterID common.UUID, status application.Status) (int, error) {
	var count int
	var err error
	if status == "" {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications a JOIN jobs j ON j.id = a.job_id WHERE j.recruiter_id = $1`, recruiterID).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications a JOIN jobs j ON j.id = a.job_id WHERE j.recruiter_id = $1 AND a.status = $2`, recruiterID, status).Scan(&count)
	}
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count recruiter applications", err)
	}
	return count, nil
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		var app application.Application
		if err := scanApplication(rows.Scan, &app); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read applications", err)
	}
	return items, nil
}

func scanApplication(scan func(dest ...any) error, app *application.Application) error {
	if err := scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Name, &app.Email, &app.Phone, &app.Resume, &app.CoverLetter, &app.Status, &app.AppliedAt, &app.UpdatedAt); err != nil {
		return err
	}
	app.Status = application.NormalizeStatus(app.Status)
	return nil
}
