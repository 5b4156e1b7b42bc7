package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode event payload", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO analytics_events (id, name, user_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		common.NewUUID(), event.Name, event.UserID, payload, time.Now().UTC())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to store event", err)
	}
	return nil
}
