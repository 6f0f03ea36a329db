// Package gateway issues record mutations from the admin client and keeps
// the client's snapshot in step with them.
package gateway

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/notify"
)

// Store is the record store surface the gateway writes through.
type Store interface {
	Create(ctx context.Context, entity model.Entity, payload any) (int64, error)
	Update(ctx context.Context, entity model.Entity, id int64, payload any) error
	Delete(ctx context.Context, entity model.Entity, id int64) error
	Reset(ctx context.Context) error
}

type Refresher interface {
	Refresh(ctx context.Context) (*model.Snapshot, error)
}

// Gateway awaits each mutation before refreshing. The local snapshot is
// never edited in place; a failed mutation leaves it as it was.
type Gateway struct {
	store    Store
	cache    Refresher
	notifier notify.Notifier
	logger   *zap.Logger
	title    cases.Caser
}

func New(store Store, cache Refresher, notifier notify.Notifier, logger *zap.Logger) *Gateway {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Gateway{
		store:    store,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		title:    cases.Title(language.English),
	}
}

// Create sends the coerced form and returns the new id with the refreshed
// snapshot.
func (g *Gateway) Create(ctx context.Context, entity model.Entity, form Form) (int64, *model.Snapshot, error) {
	id, err := g.store.Create(ctx, entity, Coerce(entity, form))
	if err != nil {
		return 0, nil, g.failed("create "+entity.Singular(), err)
	}
	g.notifier.Notify(notify.Notification{
		Level:   notify.Success,
		Title:   "Saved!",
		Message: fmt.Sprintf("%s saved successfully.", g.title.String(entity.Singular())),
	})
	snap, err := g.refresh(ctx)
	return id, snap, err
}

// Update resends the whole editable field set.
func (g *Gateway) Update(ctx context.Context, entity model.Entity, id int64, form Form) (*model.Snapshot, error) {
	if err := g.store.Update(ctx, entity, id, Coerce(entity, form)); err != nil {
		return nil, g.failed("update "+entity.Singular(), err)
	}
	g.notifier.Notify(notify.Notification{
		Level:   notify.Success,
		Title:   "Saved!",
		Message: fmt.Sprintf("%s saved successfully.", g.title.String(entity.Singular())),
	})
	return g.refresh(ctx)
}

func (g *Gateway) Delete(ctx context.Context, entity model.Entity, id int64) (*model.Snapshot, error) {
	if err := g.store.Delete(ctx, entity, id); err != nil {
		return nil, g.failed("delete "+entity.Singular(), err)
	}
	g.notifier.Notify(notify.Notification{
		Level:   notify.Success,
		Title:   "Deleted!",
		Message: fmt.Sprintf("Successfully deleted %s %d.", entity.Singular(), id),
	})
	return g.refresh(ctx)
}

// Reset asks the store to restore the sample dataset, then refreshes.
func (g *Gateway) Reset(ctx context.Context) (*model.Snapshot, error) {
	if err := g.store.Reset(ctx); err != nil {
		return nil, g.failed("reset data", err)
	}
	g.notifier.Notify(notify.Notification{
		Level:   notify.Success,
		Title:   "Success!",
		Message: "Database has been reset.",
	})
	return g.refresh(ctx)
}

func (g *Gateway) failed(op string, err error) error {
	g.logger.Warn("Mutation failed", zap.String("op", op), zap.Error(err))
	g.notifier.Notify(notify.Notification{Level: notify.Error, Title: "Error", Message: err.Error()})
	return err
}

func (g *Gateway) refresh(ctx context.Context) (*model.Snapshot, error) {
	snap, err := g.cache.Refresh(ctx)
	if err != nil {
		return snap, fmt.Errorf("refresh after mutation: %w", err)
	}
	return snap, nil
}
