package notification

import (
	"context"

	"jobport/internal/common"
)

type Repository interface {
	Create(ctx context.Context, item Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID common.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID common.UUID) error
}
