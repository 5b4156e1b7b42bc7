package auth

import (
	"context"
	"time"
)

// ResetTokenRepository stores password reset tokens hashed at rest.
//
// Consume removes the token and returns it in a single statement, so of two
// concurrent redeemers exactly one obtains the row; the other observes
// not-found. Expiry is checked by the caller on the returned record.
type ResetTokenRepository interface {
	Store(ctx context.Context, token PasswordResetToken) error
	Consume(ctx context.Context, token string) (*PasswordResetToken, error)
	DeleteExpired(ctx context.Context, before time.Time) error
}
