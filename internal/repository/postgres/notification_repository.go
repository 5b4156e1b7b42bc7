package postgres

import (
	"context"
	"database/sql"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, item notification.Notification) (*notification.Notification, error) {
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO notifications (id, user_id, kind, message, application_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.UserID, item.Kind, item.Message, item.ApplicationID, item.Read, item.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &item, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID common.UUID) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, kind, message, application_id, read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var item notification.Notification
		if err := rows.Scan(&item.ID, &item.UserID, &item.Kind, &item.Message, &item.ApplicationID, &item.Read, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read notifications", err)
	}
	return items, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to mark notification read", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}
