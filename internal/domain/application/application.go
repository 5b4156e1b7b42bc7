package application

import (
	"strings"
	"time"

	"jobport/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func NormalizeStatus(status Status) Status {
	return Status(strings.ToLower(strings.TrimSpace(string(status))))
}

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Accepted and rejected are terminal. Once an application reaches either,
// no further status transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID          common.UUID `json:"id"`
	JobID       common.UUID `json:"job_id"`
	ApplicantID common.UUID `json:"applicant_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Resume      string      `json:"resume,omitempty"`
	CoverLetter string      `json:"cover_letter,omitempty"`
	Status      Status      `json:"status"`
	AppliedAt   time.Time   `json:"applied_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
