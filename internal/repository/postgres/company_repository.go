package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, owner_id, name, industry, website, founder_name, founded_year, headquarters,
	linkedin, twitter, email, phone, address, status, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, profile company.Company) (*company.Company, error) {
	profile.ID = common.NewUUID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO companies (`+companyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		profile.ID, profile.OwnerID, profile.Name, profile.Industry, profile.Website, profile.FounderName,
		profile.FoundedYear, profile.Headquarters, profile.LinkedIn, profile.Twitter, profile.Email,
		profile.Phone, profile.Address, profile.Status, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &profile, nil
}

func (r *CompanyRepository) Update(ctx context.Context, profile company.Company) (*company.Company, error) {
	profile.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET name = $1, industry = $2, website = $3,
		founder_name = $4, founded_year = $5, headquarters = $6, linkedin = $7, twitter = $8,
		email = $9, phone = $10, address = $11, status = $12, updated_at = $13
		WHERE id = $14`,
		profile.Name, profile.Industry, profile.Website, profile.FounderName, profile.FoundedYear,
		profile.Headquarters, profile.LinkedIn, profile.Twitter, profile.Email, profile.Phone,
		profile.Address, profile.Status, profile.UpdatedAt, profile.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", sql.ErrNoRows)
	}
	return &profile, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`, ownerID)
	return scanCompany(row)
}

func scanCompany(row *sql.Row) (*company.Company, error) {
	var profile company.Company
	if err := row.Scan(&profile.ID, &profile.OwnerID, &profile.Name, &profile.Industry, &profile.Website,
		&profile.FounderName, &profile.FoundedYear, &profile.Headquarters, &profile.LinkedIn, &profile.Twitter,
		&profile.Email, &profile.Phone, &profile.Address, &profile.Status, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &profile, nil
}
