package app

import (
	"context"
	"fmt"

	"jobport/internal/common"
	"jobport/internal/domain/notification"
	"jobport/internal/policy"
)

type NotificationService struct {
	repo   notification.Repository
	logger Logger
}

func NewNotificationService(repo notification.Repository, logger Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Notify is best-effort: a failed write is logged, never propagated, so it
// cannot fail the operation that triggered it.
func (s *NotificationService) Notify(ctx context.Context, userID common.UUID, kind, message string, applicationID *common.UUID) {
	item := notification.Notification{
		UserID:        userID,
		Kind:          kind,
		Message:       message,
		ApplicationID: applicationID,
	}
	if _, err := s.repo.Create(ctx, item); err != nil {
		if s.logger != nil {
			s.logger.Error(fmt.Sprintf("failed to create notification user_id=%s kind=%s", userID, kind))
		}
	}
}

func (s *NotificationService) List(ctx context.Context, principal policy.Principal) ([]notification.Notification, error) {
	return s.repo.ListByUser(ctx, principal.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, principal policy.Principal, id common.UUID) error {
	return s.repo.MarkRead(ctx, id, principal.ID)
}
