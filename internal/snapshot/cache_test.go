package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/notify"
	"github.com/unclebandit/influencer-admin/internal/seed"
)

type fetchResult struct {
	snap *model.Snapshot
	err  error
}

// scriptedFetcher answers each FetchAll from its own channel so tests
// control completion order.
type scriptedFetcher struct {
	mu      sync.Mutex
	calls   int
	replies []chan fetchResult
}

func newScriptedFetcher(n int) *scriptedFetcher {
	f := &scriptedFetcher{}
	for i := 0; i < n; i++ {
		f.replies = append(f.replies, make(chan fetchResult, 1))
	}
	return f
}

func (f *scriptedFetcher) FetchAll(ctx context.Context) (*model.Snapshot, error) {
	f.mu.Lock()
	reply := f.replies[f.calls]
	f.calls++
	f.mu.Unlock()

	select {
	case r := <-reply:
		return r.snap, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type fetcherFunc func(ctx context.Context) (*model.Snapshot, error)

func (f fetcherFunc) FetchAll(ctx context.Context) (*model.Snapshot, error) { return f(ctx) }

func TestCache_StartsEmpty(t *testing.T) {
	c := New(fetcherFunc(nil), time.Second, nil, zap.NewNop())
	s := c.Current()
	require.NotNil(t, s)
	assert.NotNil(t, s.Brands)
	assert.Empty(t, s.Brands)
}

func TestCache_RefreshReplacesSnapshot(t *testing.T) {
	data := seed.Dataset()
	c := New(fetcherFunc(func(context.Context) (*model.Snapshot, error) { return data, nil }), time.Second, nil, zap.NewNop())

	got, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Same(t, data, got)
	assert.Same(t, data, c.Current())
}

func TestCache_FailureEmptiesSnapshotAndNotifies(t *testing.T) {
	fail := false
	c := New(fetcherFunc(func(context.Context) (*model.Snapshot, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return seed.Dataset(), nil
	}), time.Second, nil, zap.NewNop())
	rec := &notify.Recorder{}
	c.notifier = rec

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Current().Brands, 3)

	fail = true
	got, err := c.Refresh(context.Background())
	require.Error(t, err)
	assert.Empty(t, got.Brands)
	assert.Empty(t, c.Current().Campaigns)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.Error, last.Level)
}

func TestCache_TimeoutIsFailure(t *testing.T) {
	c := New(fetcherFunc(func(ctx context.Context) (*model.Snapshot, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), 20*time.Millisecond, nil, zap.NewNop())

	_, err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCache_OlderRefreshNeverOverwritesNewer(t *testing.T) {
	f := newScriptedFetcher(2)
	c := New(f, time.Second, nil, zap.NewNop())

	older := model.EmptySnapshot()
	older.Brands = []model.Brand{{ID: 1, Name: "old"}}
	newer := model.EmptySnapshot()
	newer.Brands = []model.Brand{{ID: 1, Name: "new"}}

	firstDone := make(chan *model.Snapshot)
	go func() {
		s, _ := c.Refresh(context.Background())
		firstDone <- s
	}()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.calls == 1
	}, time.Second, time.Millisecond)

	// second refresh starts later and finishes first
	f.replies[1] <- fetchResult{snap: newer}
	got, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", got.Brands[0].Name)

	f.replies[0] <- fetchResult{snap: older}
	stale := <-firstDone
	assert.Equal(t, "new", stale.Brands[0].Name)
	assert.Equal(t, "new", c.Current().Brands[0].Name)
}

func TestCache_StaleFailureKeepsNewerSnapshot(t *testing.T) {
	f := newScriptedFetcher(2)
	c := New(f, time.Second, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		_, _ = c.Refresh(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.calls == 1
	}, time.Second, time.Millisecond)

	f.replies[1] <- fetchResult{snap: seed.Dataset()}
	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	f.replies[0] <- fetchResult{err: errors.New("late failure")}
	<-done
	assert.Len(t, c.Current().Brands, 3)
}
