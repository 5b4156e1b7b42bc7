package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/auth"
)

type ResetTokenRepository struct {
	db *sql.DB
}

func NewResetTokenRepository(db *sql.DB) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) Store(ctx context.Context, token auth.PasswordResetToken) error {
	hash := hashToken(token.Token)
	_, err := r.db.ExecContext(ctx, `INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.UserID, hash, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to store reset token", err)
	}
	return nil
}

// Consume deletes and returns the token in one statement. Of two concurrent
// callers presenting the same token, exactly one gets the row back; the
// other scans no rows and reports not-found.
func (r *ResetTokenRepository) Consume(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	hash := hashToken(token)
	row := r.db.QueryRowContext(ctx, `DELETE FROM password_reset_tokens WHERE token_hash = $1
		RETURNING id, user_id, expires_at, created_at`, hash)
	var stored auth.PasswordResetToken
	if err := row.Scan(&stored.ID, &stored.UserID, &stored.ExpiresAt, &stored.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "reset token not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to consume reset token", err)
	}
	stored.Token = token
	return &stored, nil
}

func (r *ResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete expired reset tokens", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
