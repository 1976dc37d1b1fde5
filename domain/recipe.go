package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

const (
	minGridSize = 1
)

var (
	ErrInvalidRecipe  = errors.New("invalid maze recipe")
	ErrRecipeNotFound = errors.New("maze recipe not found")
	ErrCacheMiss      = errors.New("maze snapshot not cached")
)

// Recipe is everything needed to re-derive a maze: generation is
// deterministic for a given algorithm, size and seed.
type Recipe struct {
	ID                   uuid.UUID      `bson:"_id" json:"id"`
	Algorithm            maze.Algorithm `bson:"algorithm" json:"algorithm"`
	Size                 int            `bson:"size" json:"size"`
	Seed                 int64          `bson:"seed" json:"seed"`
	ExtraEdgeProbability float64        `bson:"extraEdgeProbability" json:"extra_edge_probability"`
	Owner                string         `bson:"owner" json:"owner"`
	CreatedAt            time.Time      `bson:"createdAt" json:"created_at"`
}

// RecipeConfig holds parameters for creating a Recipe. A nil Seed lets the
// generator pick one from the clock.
type RecipeConfig struct {
	ID                   uuid.UUID
	Algorithm            string
	Size                 int
	MaxSize              int
	Seed                 *int64
	ExtraEdgeProbability float64
	Owner                string
	CreatedAt            time.Time
}

// NewRecipe validates config, generates the maze once to fix its seed and
// returns both.
func NewRecipe(config RecipeConfig) (*Recipe, *maze.Maze, error) {
	alg, err := maze.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	if err := validateSize(config.Size, config.MaxSize); err != nil {
		return nil, nil, err
	}
	if err := validateExtraEdges(alg, config.ExtraEdgeProbability); err != nil {
		return nil, nil, err
	}

	r := &Recipe{
		ID:                   config.ID,
		Algorithm:            alg,
		Size:                 config.Size,
		ExtraEdgeProbability: config.ExtraEdgeProbability,
		Owner:                config.Owner,
		CreatedAt:            config.CreatedAt,
	}

	var opts []maze.Option
	if config.Seed != nil {
		opts = append(opts, maze.WithSeed(*config.Seed))
	}
	m, seed, err := r.generate(opts...)
	if err != nil {
		return nil, nil, err
	}
	r.Seed = seed
	return r, m, nil
}

// Maze regenerates the maze described by the recipe.
func (r *Recipe) Maze() (*maze.Maze, error) {
	m, _, err := r.generate(maze.WithSeed(r.Seed))
	return m, err
}

func (r *Recipe) generate(opts ...maze.Option) (*maze.Maze, int64, error) {
	if r.ExtraEdgeProbability > 0 {
		opts = append(opts, maze.WithExtraEdgeProbability(r.ExtraEdgeProbability))
	}
	g, err := maze.New(r.Algorithm, r.Size, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	m, err := g.Generate()
	if err != nil {
		return nil, 0, err
	}
	return m, g.Seed(), nil
}

func validateSize(size, maxSize int) error {
	if size < minGridSize {
		return fmt.Errorf("%w: size %d below %d", ErrInvalidRecipe, size, minGridSize)
	}
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w: size %d above %d", ErrInvalidRecipe, size, maxSize)
	}
	return nil
}

func validateExtraEdges(alg maze.Algorithm, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: extra edge probability %v", ErrInvalidRecipe, p)
	}
	if p > 0 && alg != maze.AlgorithmPrim {
		return fmt.Errorf("%w: extra edges are only supported by %s", ErrInvalidRecipe, maze.AlgorithmPrim)
	}
	return nil
}
