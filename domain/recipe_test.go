package domain

import (
	"math"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	seed := int64(1234)

	t.Run("fixed seed", func(t *testing.T) {
		r, m, err := NewRecipe(RecipeConfig{
			ID:        uuid.New(),
			Algorithm: "Wilsons",
			Size:      8,
			MaxSize:   10,
			Seed:      &seed,
			Owner:     "alice",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, maze.AlgorithmWilson, r.Algorithm)
		assert.Equal(t, seed, r.Seed)
		assert.Equal(t, 63, m.EdgeCount())

		again, err := r.Maze()
		require.NoError(t, err)
		assert.Equal(t, m.Edges(), again.Edges())
	})

	t.Run("clock seed is recorded", func(t *testing.T) {
		r, m, err := NewRecipe(RecipeConfig{Algorithm: "backtracking", Size: 6})
		require.NoError(t, err)

		again, err := r.Maze()
		require.NoError(t, err)
		assert.Equal(t, m.Edges(), again.Edges())
	})

	t.Run("extra edges", func(t *testing.T) {
		r, m, err := NewRecipe(RecipeConfig{Algorithm: "prim", Size: 5, Seed: &seed, ExtraEdgeProbability: 1})
		require.NoError(t, err)
		assert.Equal(t, 40, m.EdgeCount())

		snap := NewSnapshot(*r, m)
		assert.False(t, snap.Perfect)
		assert.Equal(t, 40, snap.EdgeCount)
		assert.Len(t, snap.Cells, 25)
	})

	t.Run("invalid", func(t *testing.T) {
		for name, cfg := range map[string]RecipeConfig{
			"unknown algorithm":  {Algorithm: "kruskal", Size: 4},
			"empty grid":         {Algorithm: "prim", Size: 0},
			"too large":          {Algorithm: "prim", Size: 11, MaxSize: 10},
			"probability":        {Algorithm: "prim", Size: 4, ExtraEdgeProbability: 1.5},
			"nan probability":    {Algorithm: "prim", Size: 4, ExtraEdgeProbability: math.NaN()},
			"extra edges on dfs": {Algorithm: "dfs", Size: 4, ExtraEdgeProbability: 0.2},
		} {
			t.Run(name, func(t *testing.T) {
				_, _, err := NewRecipe(cfg)
				assert.ErrorIs(t, err, ErrInvalidRecipe)
			})
		}
	})
}

func TestSnapshotPerfect(t *testing.T) {
	seed := int64(7)
	r, m, err := NewRecipe(RecipeConfig{Algorithm: "prim", Size: 4, Seed: &seed})
	require.NoError(t, err)
	snap := NewSnapshot(*r, m)
	assert.True(t, snap.Perfect)
	assert.Equal(t, m.DeadEnds(), snap.DeadEnds)
	assert.Equal(t, m.Edges(), snap.Edges)
}

func TestSnapshotMaze(t *testing.T) {
	seed := int64(11)
	r, m, err := NewRecipe(RecipeConfig{Algorithm: "wilson", Size: 5, Seed: &seed})
	require.NoError(t, err)

	rebuilt, err := NewSnapshot(*r, m).Maze()
	require.NoError(t, err)
	assert.Equal(t, m.Cells(), rebuilt.Cells())
	assert.Equal(t, m.String(), rebuilt.String())
}
