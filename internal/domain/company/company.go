package company

import (
	"time"

	"jobport/internal/common"
)

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

type Company struct {
	ID           common.UUID `json:"id"`
	OwnerID      common.UUID `json:"owner_id"`
	Name         string      `json:"name"`
	Industry     string      `json:"industry"`
	Website      string      `json:"website,omitempty"`
	FounderName  string      `json:"founder_name,omitempty"`
	FoundedYear  int         `json:"founded_year,omitempty"`
	Headquarters string      `json:"headquarters,omitempty"`
	LinkedIn     string      `json:"linkedin,omitempty"`
	Twitter      string      `json:"twitter,omitempty"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Address      string      `json:"address,omitempty"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
