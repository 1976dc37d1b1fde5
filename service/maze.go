package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxGridSize = 200
	defaultRecentLimit = 20
	maxRecentLimit     = 100
	maxCanvasSide      = 4096
)

var (
	ErrMissingDependency = errors.New("missing service dependency")
	ErrInvalidCanvas     = errors.New("invalid canvas")
)

type MazeServiceConfig struct {
	Repo        i.RecipeRepo
	Cache       i.SnapshotCache
	Recent      i.RecentIndex
	Logger      i.Logger
	MaxGridSize int
	Now         func() time.Time
}

var _ i.MazeService = (*MazeService)(nil)

// MazeService creates maze recipes and serves the mazes they derive.
type MazeService struct {
	repo        i.RecipeRepo
	cache       i.SnapshotCache
	recent      i.RecentIndex
	logger      i.Logger
	maxGridSize int
	now         func() time.Time
}

func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil || cfg.Recent == nil || cfg.Logger == nil {
		return nil, ErrMissingDependency
	}
	if cfg.MaxGridSize <= 0 {
		cfg.MaxGridSize = defaultMaxGridSize
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &MazeService{
		repo:        cfg.Repo,
		cache:       cfg.Cache,
		recent:      cfg.Recent,
		logger:      cfg.Logger,
		maxGridSize: cfg.MaxGridSize,
		now:         cfg.Now,
	}, nil
}

// Create generates a maze, stores its recipe and caches the snapshot.
func (s *MazeService) Create(ctx context.Context, req i.CreateMazeRequest) (*dmn.Snapshot, error) {
	recipe, m, err := dmn.NewRecipe(dmn.RecipeConfig{
		ID:                   uuid.New(),
		Algorithm:            req.Algorithm,
		Size:                 req.Size,
		MaxSize:              s.maxGridSize,
		Seed:                 req.Seed,
		ExtraEdgeProbability: req.ExtraEdgeProbability,
		Owner:                req.Owner,
		CreatedAt:            s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, recipe); err != nil {
		s.logger.Error(fmt.Sprintf("Saving recipe %s: %s", recipe.ID, err))
		return nil, err
	}
	if err := s.recent.Track(ctx, recipe.ID, recipe.CreatedAt); err != nil {
		s.logger.Warning(fmt.Sprintf("Indexing recipe %s: %s", recipe.ID, err))
	}

	snapshot := dmn.NewSnapshot(*recipe, m)
	s.store(ctx, snapshot)
	s.logger.Info(fmt.Sprintf("Maze created: ID=%s Algorithm=%s Size=%d Seed=%d", recipe.ID, recipe.Algorithm, recipe.Size, recipe.Seed))
	return snapshot, nil
}

// Snapshot returns the cached snapshot or regenerates it from the stored
// recipe under the recipe lock.
func (s *MazeService) Snapshot(ctx context.Context, id uuid.UUID) (*dmn.Snapshot, error) {
	if snapshot, ok := s.cached(ctx, id); ok {
		return snapshot, nil
	}

	recipe, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock, err := s.cache.Lock(ctx, id)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Locking recipe %s: %s", id, err))
		return s.rebuild(recipe)
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warning(fmt.Sprintf("Unlocking recipe %s: %s", id, err))
		}
	}()

	if snapshot, ok := s.cached(ctx, id); ok {
		return snapshot, nil
	}
	snapshot, err := s.rebuild(recipe)
	if err != nil {
		return nil, err
	}
	s.store(ctx, snapshot)
	return snapshot, nil
}

// Lines returns the wall segments of the maze scaled to canvas.
func (s *MazeService) Lines(ctx context.Context, id uuid.UUID, canvas i.Canvas) ([]render.Line, error) {
	m, err := s.maze(ctx, id, canvas)
	if err != nil {
		return nil, err
	}
	return render.WallLines(m, canvas.Width, canvas.Height, canvas.Thickness)
}

// PNG writes the rasterized maze to w.
func (s *MazeService) PNG(ctx context.Context, id uuid.UUID, canvas i.Canvas, w io.Writer) error {
	m, err := s.maze(ctx, id, canvas)
	if err != nil {
		return err
	}
	return render.EncodePNG(w, m, canvas.Width, canvas.Height, canvas.Thickness)
}

// Recent returns the newest recipes first. Recipes missing from the
// repository are skipped.
func (s *MazeService) Recent(ctx context.Context, limit int64) ([]*dmn.Recipe, error) {
	ids, err := s.recent.Recent(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	recipes := make([]*dmn.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, err := s.repo.ByID(ctx, id)
		if errors.Is(err, dmn.ErrRecipeNotFound) {
			s.logger.Warning(fmt.Sprintf("Indexed recipe %s not found", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// Owned returns the newest recipes created by owner.
func (s *MazeService) Owned(ctx context.Context, owner string, limit int64) ([]*dmn.Recipe, error) {
	return s.repo.ByOwner(ctx, owner, clampLimit(limit))
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return defaultRecentLimit
	}
	return min(limit, maxRecentLimit)
}

func (s *MazeService) maze(ctx context.Context, id uuid.UUID, canvas i.Canvas) (*maze.Maze, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 || canvas.Width > maxCanvasSide || canvas.Height > maxCanvasSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, canvas.Width, canvas.Height)
	}
	if canvas.Thickness <= 0 {
		return nil, fmt.Errorf("%w: thickness %v", ErrInvalidCanvas, canvas.Thickness)
	}

	snapshot, err := s.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshot.Maze()
}

func (s *MazeService) rebuild(recipe *dmn.Recipe) (*dmn.Snapshot, error) {
	m, err := recipe.Maze()
	if err != nil {
		s.logger.Error(fmt.Sprintf("Regenerating recipe %s: %s", recipe.ID, err))
		return nil, err
	}
	return dmn.NewSnapshot(*recipe, m), nil
}

func (s *MazeService) cached(ctx context.Context, id uuid.UUID) (*dmn.Snapshot, bool) {
	snapshot, err := s.cache.Get(ctx, id)
	if err == nil {
		return snapshot, true
	}
	if !errors.Is(err, dmn.ErrCacheMiss) {
		s.logger.Warning(fmt.Sprintf("Reading snapshot %s from cache: %s", id, err))
	}
	return nil, false
}

func (s *MazeService) store(ctx context.Context, snapshot *dmn.Snapshot) {
	if err := s.cache.Set(ctx, snapshot); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching snapshot %s: %s", snapshot.Recipe.ID, err))
	}
}
