// Package cache stores rendered snapshots between requests so repeated
// dashboard loads skip the six-table read.
package cache

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

// SnapshotCache keys entries by a version number. Invalidate bumps the
// version, so a read that started before a mutation can only write an entry
// under the old version, which is never served again.
type SnapshotCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64) (*model.Snapshot, bool, error)
	Set(ctx context.Context, version int64, s *model.Snapshot) error
	Invalidate(ctx context.Context) error
}

// Nop never holds anything. It is used when no Redis address is configured.
type Nop struct{}

func (Nop) Version(context.Context) (int64, error) { return 0, nil }

func (Nop) Get(context.Context, int64) (*model.Snapshot, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, int64, *model.Snapshot) error { return nil }

func (Nop) Invalidate(context.Context) error { return nil }

var _ SnapshotCache = Nop{}
