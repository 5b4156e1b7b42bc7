package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, account user.User) (*user.User, error) {
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, name, email, password_hash, role, profile_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.Name, account.Email, account.PasswordHash, account.Role, account.ProfileComplete, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &account, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, role, profile_complete, created_at, updated_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, role, profile_complete, created_at, updated_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, passwordHash, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update password", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) SetProfileComplete(ctx context.Context, id common.UUID, complete bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET profile_complete = $1, updated_at = $2 WHERE id = $3`, complete, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update profile flag", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count users", err)
	}
	return count, nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var account user.User
	if err := row.Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.ProfileComplete, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &account, nil
}
