package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// SnapshotCache keeps generated maze snapshots so reads skip regeneration.
type SnapshotCache interface {
	// Get returns dmn.ErrCacheMiss when the snapshot is absent or expired.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Snapshot, error)
	Set(ctx context.Context, snapshot *dmn.Snapshot) error

	// Lock takes an exclusive lock on the recipe id across every API
	// instance. The returned function releases it.
	Lock(ctx context.Context, id uuid.UUID) (func() error, error)
}

// RecentIndex orders recipes by creation time.
type RecentIndex interface {
	Track(ctx context.Context, id uuid.UUID, createdAt time.Time) error
	Recent(ctx context.Context, limit int64) ([]uuid.UUID, error)
}
