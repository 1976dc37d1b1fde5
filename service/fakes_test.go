package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type memoryRepo struct {
	mu      sync.Mutex
	recipes map[uuid.UUID]dmn.Recipe
	saveErr error
	reads   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{recipes: make(map[uuid.UUID]dmn.Recipe)}
}

func (r *memoryRepo) Save(_ context.Context, recipe *dmn.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, dmn.ErrRecipeNotFound
	}
	return &recipe, nil
}

func (r *memoryRepo) ByOwner(_ context.Context, owner string, limit int64) ([]*dmn.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var recipes []*dmn.Recipe
	for _, recipe := range r.recipes {
		if recipe.Owner == owner {
			recipes = append(recipes, &recipe)
		}
	}
	sort.Slice(recipes, func(a, b int) bool {
		return recipes[a].CreatedAt.After(recipes[b].CreatedAt)
	})
	if int64(len(recipes)) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

type memoryCache struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]dmn.Snapshot
	getErr    error
	lockErr   error
	locks     int
	unlocks   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{snapshots: make(map[uuid.UUID]dmn.Snapshot)}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*dmn.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	s, ok := c.snapshots[id]
	if !ok {
		return nil, dmn.ErrCacheMiss
	}
	return &s, nil
}

func (c *memoryCache) Set(_ context.Context, s *dmn.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[s.Recipe.ID] = *s
	return nil
}

func (c *memoryCache) Lock(_ context.Context, _ uuid.UUID) (func() error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unlocks++
		return nil
	}, nil
}

func (c *memoryCache) evict(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, id)
}

type memoryRecent struct {
	mu      sync.Mutex
	created map[uuid.UUID]time.Time
}

func newMemoryRecent() *memoryRecent {
	return &memoryRecent{created: make(map[uuid.UUID]time.Time)}
}

func (r *memoryRecent) Track(_ context.Context, id uuid.UUID, createdAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[id] = createdAt
	return nil
}

func (r *memoryRecent) Recent(_ context.Context, limit int64) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.created))
	for id := range r.created {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return r.created[ids[a]].After(r.created[ids[b]])
	})
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type discardLogger struct{}

func (discardLogger) Info(string) {}

func (discardLogger) Warning(string) {}

func (discardLogger) Error(string) {}

var errBackend = errors.New("backend unavailable")
