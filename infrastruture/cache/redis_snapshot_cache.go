package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotKeyFmt = "maze:snapshot:%s"
	lockKeyFmt     = "maze:snapshot:%s:lock"
	lockExpiry     = 10 * time.Second
)

// RedisSnapshotCache stores maze snapshots as JSON with a TTL and guards
// regeneration with a redsync mutex per recipe.
type RedisSnapshotCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SnapshotCache = (*RedisSnapshotCache)(nil)

// NewRedisSnapshotCache initializes a RedisSnapshotCache with the provided Redis client and TTL.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	c := &RedisSnapshotCache{
		client: client,
		ttl:    ttl,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c
}

func (c *RedisSnapshotCache) Get(ctx context.Context, id uuid.UUID) (*dmn.Snapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dmn.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func (c *RedisSnapshotCache) Set(ctx context.Context, snapshot *dmn.Snapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(snapshot.Recipe.ID), data, c.ttl).Err()
}

func (c *RedisSnapshotCache) Lock(ctx context.Context, id uuid.UUID) (func() error, error) {
	mutex := c.locker.NewMutex(fmt.Sprintf(lockKeyFmt, id), redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}

func snapshotKey(id uuid.UUID) string {
	return fmt.Sprintf(snapshotKeyFmt, id)
}

func encode(snapshot *dmn.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot %s: %w", snapshot.Recipe.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*dmn.Snapshot, error) {
	var snapshot dmn.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snapshot, nil
}
