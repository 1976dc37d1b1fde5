package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *Maze {
	t.Helper()
	m, err := NewMaze(2)
	require.NoError(t, err)
	return m
}

func TestVerify(t *testing.T) {
	a := CellPosition{Row: 0, Col: 0}
	b := CellPosition{Row: 0, Col: 1}
	c := CellPosition{Row: 1, Col: 1}
	d := CellPosition{Row: 1, Col: 0}

	t.Run("spanning tree", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		require.NoError(t, m.OpenWall(b, c))
		require.NoError(t, m.OpenWall(c, d))
		assert.NoError(t, m.Verify(true))
	})

	t.Run("cycle", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		require.NoError(t, m.OpenWall(b, c))
		require.NoError(t, m.OpenWall(c, d))
		require.NoError(t, m.OpenWall(d, a))
		assert.ErrorIs(t, m.Verify(true), ErrCycle)
		assert.NoError(t, m.Verify(false))
	})

	t.Run("disconnected", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		assert.ErrorIs(t, m.Verify(true), ErrDisconnected)
		assert.ErrorIs(t, m.Verify(false), ErrDisconnected)
	})

	t.Run("one-sided wall", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		require.NoError(t, m.OpenWall(b, c))
		require.NoError(t, m.OpenWall(c, d))
		m.cells[m.index(a)].SouthWall = false
		assert.ErrorIs(t, m.Verify(false), ErrInconsistentWalls)
	})

	t.Run("open boundary", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		require.NoError(t, m.OpenWall(b, c))
		require.NoError(t, m.OpenWall(c, d))
		m.cells[m.index(a)].NorthWall = false
		assert.ErrorIs(t, m.Verify(false), ErrInconsistentWalls)
	})

	t.Run("walls open without an edge", func(t *testing.T) {
		m := square(t)
		require.NoError(t, m.OpenWall(a, b))
		require.NoError(t, m.OpenWall(b, c))
		require.NoError(t, m.OpenWall(c, d))
		m.cells[m.index(a)].SouthWall = false
		m.cells[m.index(d)].NorthWall = false
		assert.ErrorIs(t, m.Verify(false), ErrInconsistentWalls)
	})

	t.Run("empty and single", func(t *testing.T) {
		for _, size := range []int{0, 1} {
			m, err := NewMaze(size)
			require.NoError(t, err)
			assert.NoError(t, m.Verify(true))
		}
	})
}
