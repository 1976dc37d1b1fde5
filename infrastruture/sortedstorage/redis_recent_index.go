package sortedstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKey        = "maze:recent"
	defaultMaxEntries = 1000
)

// RedisRecentIndex keeps recipe IDs in a Redis sorted set scored by creation
// time, trimmed to the newest maxEntries.
type RedisRecentIndex struct {
	client     *redis.Client
	locker     *redsync.Redsync
	key        string
	maxEntries int64
	ttl        time.Duration
}

var _ i.RecentIndex = (*RedisRecentIndex)(nil)

// NewRedisRecentIndex initializes a RedisRecentIndex with the provided Redis client and TTL.
func NewRedisRecentIndex(client *redis.Client, ttl time.Duration) *RedisRecentIndex {
	index := &RedisRecentIndex{
		client:     client,
		key:        defaultKey,
		maxEntries: defaultMaxEntries,
		ttl:        ttl,
	}
	pool := goredis.NewPool(client)
	index.locker = redsync.New(pool)
	return index
}

// Track adds id with its creation time and refreshes the index expiration.
func (r *RedisRecentIndex) Track(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
	_, err := r.client.ZAdd(ctx, r.key, redis.Z{Score: score(createdAt), Member: id.String()}).Result()
	if err != nil {
		return err
	}
	_ = r.client.Expire(ctx, r.key, r.ttl).Err()

	return r.trim(ctx)
}

// trim drops the oldest members beyond maxEntries.
func (r *RedisRecentIndex) trim(ctx context.Context) error {
	mutex := r.locker.NewMutex(r.key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	if r.client.ZCard(ctx, r.key).Val() > r.maxEntries {
		return r.client.ZRemRangeByRank(ctx, r.key, 0, -(r.maxEntries + 1)).Err()
	}
	return nil
}

// Recent returns up to limit IDs, newest first. Members that are not UUIDs
// are skipped.
func (r *RedisRecentIndex) Recent(ctx context.Context, limit int64) ([]uuid.UUID, error) {
	if limit <= 0 {
		return nil, nil
	}
	members, err := r.client.ZRevRange(ctx, r.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.key, err)
	}
	return parseIDs(members), nil
}

func parseIDs(members []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, raw := range members {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func score(t time.Time) float64 {
	return float64(t.UnixNano())
}
