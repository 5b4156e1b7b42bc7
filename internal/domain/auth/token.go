package auth

import (
	"time"

	"jobport/internal/common"
)

// PasswordResetToken is a single-use credential. Token holds the plaintext
// value only in memory; repositories persist a hash.
type PasswordResetToken struct {
	ID        common.UUID
	UserID    common.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
