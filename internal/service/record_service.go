package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/cache"
	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/queue"
	"github.com/unclebandit/influencer-admin/internal/repository"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// RecordService applies mutations to the store and keeps the snapshot cache
// and change feed in step with them.
type RecordService struct {
	Store  repository.Store
	Cache  cache.SnapshotCache
	Queue  queue.Queue
	Topic  string
	Logger *zap.Logger
	Now    func() time.Time
}

func NewRecordService(store repository.Store, c cache.SnapshotCache, q queue.Queue, logger *zap.Logger) *RecordService {
	if c == nil {
		c = cache.Nop{}
	}
	return &RecordService{
		Store:  store,
		Cache:  c,
		Queue:  q,
		Topic:  queue.TopicRecordChanges,
		Logger: logger,
		Now:    time.Now,
	}
}

// Snapshot returns all six tables, from the response cache when it holds an
// entry for the current version.
func (s *RecordService) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	version, err := s.Cache.Version(ctx)
	if err != nil {
		s.Logger.Warn("Snapshot cache unavailable", zap.Error(err))
		return s.load(ctx)
	}

	if snap, ok, err := s.Cache.Get(ctx, version); err != nil {
		s.Logger.Warn("Failed to read cached snapshot", zap.Error(err))
	} else if ok {
		return snap, nil
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, version, snap); err != nil {
		s.Logger.Warn("Failed to cache snapshot", zap.Error(err))
	}
	return snap, nil
}

func (s *RecordService) load(ctx context.Context) (*model.Snapshot, error) {
	snap, err := s.Store.Snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

// DecodeRecord reads a JSON body into a fresh record of the entity and
// validates it.
func DecodeRecord(entity model.Entity, body io.Reader) (model.Record, error) {
	rec, err := model.NewRecord(entity)
	if err != nil {
		return nil, err
	}
	if err := json.NewDecoder(body).Decode(rec); err != nil {
		return nil, appErrors.NewValidation("invalid request body: %v", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecordService) repo(entity model.Entity) (repository.RecordRepository, error) {
	r, ok := s.Store.Records[entity]
	if !ok {
		return nil, fmt.Errorf("no repository for %s", entity)
	}
	return r, nil
}

func (s *RecordService) Create(ctx context.Context, entity model.Entity, body io.Reader) (int64, error) {
	rec, err := DecodeRecord(entity, body)
	if err != nil {
		return 0, err
	}
	r, err := s.repo(entity)
	if err != nil {
		return 0, err
	}

	id, err := r.Insert(ctx, rec)
	if err != nil {
		return 0, err
	}
	s.changed(ctx, entity, id, model.ActionCreate)
	return id, nil
}

// Update replaces every editable field of the record.
func (s *RecordService) Update(ctx context.Context, entity model.Entity, id int64, body io.Reader) error {
	rec, err := DecodeRecord(entity, body)
	if err != nil {
		return err
	}
	r, err := s.repo(entity)
	if err != nil {
		return err
	}

	if err := r.Replace(ctx, id, rec); err != nil {
		return err
	}
	s.changed(ctx, entity, id, model.ActionUpdate)
	return nil
}

func (s *RecordService) Delete(ctx context.Context, entity model.Entity, id int64) error {
	r, err := s.repo(entity)
	if err != nil {
		return err
	}
	if err := r.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, entity, id, model.ActionDelete)
	return nil
}

// Reset restores the sample dataset in one all-or-nothing store operation.
func (s *RecordService) Reset(ctx context.Context) error {
	if err := s.Store.Snapshots.Reset(ctx); err != nil {
		return fmt.Errorf("reset data: %w", err)
	}
	s.changed(ctx, "", 0, model.ActionReset)
	return nil
}

func (s *RecordService) Activity(ctx context.Context, limit int) ([]model.Activity, error) {
	return s.Store.Activity.Recent(ctx, ClampActivityLimit(limit))
}

// ClampActivityLimit applies the default for non-positive values and caps
// large ones.
func ClampActivityLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultActivityLimit
	case limit > MaxActivityLimit:
		return MaxActivityLimit
	}
	return limit
}

// changed runs after a committed mutation. Its failures are logged only;
// the mutation itself already succeeded.
func (s *RecordService) changed(ctx context.Context, entity model.Entity, id int64, action model.ChangeAction) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.Error("Failed to invalidate snapshot cache", zap.Error(err))
	}

	ev := model.ChangeEvent{
		EventID:    uuid.NewString(),
		Entity:     entity,
		RecordID:   id,
		Action:     action,
		OccurredAt: s.Now().UTC(),
	}
	s.Logger.Info("Record changed",
		zap.String("action", string(action)),
		zap.String("entity", string(entity)),
		zap.Int64("id", id),
	)
	if s.Queue == nil {
		return
	}
	if err := s.Queue.Publish(s.Topic, ev); err != nil {
		s.Logger.Warn("Failed to publish change event", zap.String("event_id", ev.EventID), zap.Error(err))
	}
}
