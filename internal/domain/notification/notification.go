package notification

import (
	"time"

	"jobport/internal/common"
)

type Notification struct {
	ID            common.UUID  `json:"id"`
	UserID        common.UUID  `json:"user_id"`
	Kind          string       `json:"kind"`
	Message       string       `json:"message"`
	ApplicationID *common.UUID `json:"application_id,omitempty"`
	Read          bool         `json:"read"`
	CreatedAt     time.Time    `json:"created_at"`
}
