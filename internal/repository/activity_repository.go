package repository

import (
	"context"
	"database/sql"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type ActivityRepository struct {
	DB DBTX
}

// Append records an event once. Redelivered events with a known event_id
// are ignored.
func (r *ActivityRepository) Append(ctx context.Context, a model.Activity) error {
	query := `
        INSERT INTO activity_log (event_id, entity, record_id, action, summary, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (event_id) DO NOTHING
    `
	_, err := r.DB.ExecContext(ctx, query, a.EventID, string(a.Entity), a.RecordID, string(a.Action), a.Summary, a.OccurredAt)
	return mapError(err)
}

// Recent returns up to limit entries, newest first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, event_id, entity, record_id, action, summary, occurred_at
        FROM activity_log
        ORDER BY occurred_at DESC, id DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Activity{}
	for rows.Next() {
		var (
			a      model.Activity
			entity sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.EventID, &entity, &a.RecordID, &a.Action, &a.Summary, &a.OccurredAt); err != nil {
			return nil, err
		}
		a.Entity = model.Entity(entity.String)
		items = append(items, a)
	}
	return items, rows.Err()
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)
