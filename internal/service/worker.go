package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/repository"
)

// ActivityWorker turns change events into activity log entries.
type ActivityWorker struct {
	Repo   repository.ActivityRepositoryInterface
	Logger *zap.Logger
}

func NewActivityWorker(repo repository.ActivityRepositoryInterface, logger *zap.Logger) *ActivityWorker {
	return &ActivityWorker{Repo: repo, Logger: logger}
}

// Record appends the event. Events without an id cannot be deduplicated
// and are dropped.
func (w *ActivityWorker) Record(ctx context.Context, ev model.ChangeEvent) error {
	if ev.EventID == "" {
		w.Logger.Warn("Dropping change event without event_id", zap.String("action", string(ev.Action)))
		return nil
	}
	occurred := ev.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}

	entry := model.Activity{
		EventID:    ev.EventID,
		Entity:     ev.Entity,
		RecordID:   ev.RecordID,
		Action:     ev.Action,
		Summary:    Summarize(ev),
		OccurredAt: occurred,
	}
	if err := w.Repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	w.Logger.Debug("Activity recorded", zap.String("event_id", ev.EventID), zap.String("summary", entry.Summary))
	return nil
}
