// Package snapshot holds the client's current copy of the dataset.
package snapshot

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/notify"
)

// Fetcher retrieves the full dataset from the record store.
type Fetcher interface {
	FetchAll(ctx context.Context) (*model.Snapshot, error)
}

// Cache owns the current snapshot. Each Refresh takes a generation number;
// a result is applied only if no later refresh has been applied already, so
// overlapping refreshes never roll the snapshot back.
type Cache struct {
	fetcher  Fetcher
	timeout  time.Duration
	notifier notify.Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	current *model.Snapshot
	issued  uint64
	applied uint64
}

func New(fetcher Fetcher, timeout time.Duration, notifier notify.Notifier, logger *zap.Logger) *Cache {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Cache{
		fetcher:  fetcher,
		timeout:  timeout,
		notifier: notifier,
		logger:   logger,
		current:  model.EmptySnapshot(),
	}
}

// Current returns the last applied snapshot. Callers must not modify it.
func (c *Cache) Current() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Refresh fetches a full snapshot and replaces the current one. On failure
// the current snapshot becomes empty and the error is returned.
func (c *Cache) Refresh(ctx context.Context) (*model.Snapshot, error) {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.mu.Unlock()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	snap, err := c.fetcher.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen < c.applied {
		c.logger.Debug("Discarding stale snapshot", zap.Uint64("generation", gen), zap.Uint64("applied", c.applied))
		return c.current, err
	}
	c.applied = gen

	if err != nil {
		c.logger.Error("Error loading data", zap.Error(err))
		c.current = model.EmptySnapshot()
		c.notifier.Notify(notify.Notification{
			Level:   notify.Error,
			Title:   "Error",
			Message: "Could not load data from the server. Please refresh.",
		})
		return c.current, err
	}

	c.current = snap.Normalize()
	return c.current, nil
}
