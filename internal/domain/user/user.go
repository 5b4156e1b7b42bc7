package user

import (
	"strings"
	"time"

	"jobport/internal/common"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole accepts only the closed set of roles. Unknown values are
// rejected instead of falling back to a default.
func ParseRole(value string) (Role, error) {
	normalized := Role(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be job_seeker, recruiter, or admin"})
	}
}

type User struct {
	ID              common.UUID `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PasswordHash    string      `json:"-"`
	Role            Role        `json:"role"`
	ProfileComplete bool        `json:"profile_complete"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
