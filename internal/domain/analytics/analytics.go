package analytics

import (
	"context"
	"time"

	"jobport/internal/common"
)

type Event struct {
	Name      string
	UserID    *common.UUID
	Payload   map[string]string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, event Event) error
}
