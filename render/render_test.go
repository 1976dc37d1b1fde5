package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, alg maze.Algorithm, size int) *maze.Maze {
	t.Helper()
	g, err := maze.New(alg, size, maze.WithSeed(99))
	require.NoError(t, err)
	m, err := g.Generate()
	require.NoError(t, err)
	return m
}

func TestWallLines(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		m := generate(t, maze.AlgorithmWilson, 1)
		lines, err := WallLines(m, 100, 100, 2)
		require.NoError(t, err)
		assert.Len(t, lines, 6)
		assert.Equal(t, Line{X1: 0, Y1: 100, X2: 100, Y2: 100, Thickness: 2}, lines[0])
		assert.Equal(t, Line{X1: 100, Y1: 0, X2: 100, Y2: 100, Thickness: 2}, lines[1])
	})

	t.Run("boundary with entrance and exit", func(t *testing.T) {
		m := generate(t, maze.AlgorithmPrim, 2)
		lines, err := WallLines(m, 200, 100, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(lines), 4)

		boundary := lines[len(lines)-4:]
		assert.Equal(t, []Line{
			{X1: 0, Y1: 0, X2: 100, Y2: 0, Thickness: 1},
			{X1: 0, Y1: 0, X2: 0, Y2: 50, Thickness: 1},
			{X1: 100, Y1: 100, X2: 200, Y2: 100, Thickness: 1},
			{X1: 200, Y1: 50, X2: 200, Y2: 100, Thickness: 1},
		}, boundary)
	})

	t.Run("count follows closed walls", func(t *testing.T) {
		for _, alg := range maze.Algorithms() {
			m := generate(t, alg, 6)
			lines, err := WallLines(m, 600, 600, 1)
			require.NoError(t, err)

			want := 4
			for _, c := range m.Cells() {
				if c.SouthWall {
					want++
				}
				if c.EastWall {
					want++
				}
			}
			assert.Len(t, lines, want, string(alg))
		}
	})

	t.Run("empty maze", func(t *testing.T) {
		m, err := maze.NewMaze(0)
		require.NoError(t, err)
		lines, err := WallLines(m, 100, 100, 1)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("invalid canvas", func(t *testing.T) {
		m := generate(t, maze.AlgorithmPrim, 2)
		_, err := WallLines(m, 0, 100, 1)
		assert.ErrorIs(t, err, ErrInvalidCanvas)
		_, err = WallLines(m, 100, 100, 0)
		assert.ErrorIs(t, err, ErrInvalidThickness)
	})
}

func TestGraphPrimitives(t *testing.T) {
	m := generate(t, maze.AlgorithmPrim, 3)

	positions, err := NodePositions(m, 300, 300)
	require.NoError(t, err)
	assert.Len(t, positions, 9)
	assert.Equal(t, Point{X: 50, Y: 50}, positions[maze.CellPosition{Row: 0, Col: 0}])
	assert.Equal(t, Point{X: 250, Y: 150}, positions[maze.CellPosition{Row: 1, Col: 2}])

	lines, nodes, err := GraphPrimitives(m, 300, 300, 5)
	require.NoError(t, err)
	assert.Len(t, lines, m.EdgeCount())
	assert.Len(t, nodes, 9)
	assert.Equal(t, Ellipse{X: 45, Y: 45, Width: 10, Height: 10}, nodes[0])

	for _, l := range lines {
		dx, dy := l.X2-l.X1, l.Y2-l.Y1
		assert.True(t, (dx == 0) != (dy == 0), "edges join orthogonal neighbors")
	}

	_, _, err = GraphPrimitives(m, 300, 300, 0)
	assert.ErrorIs(t, err, ErrInvalidThickness)
}

func TestRasterize(t *testing.T) {
	m := generate(t, maze.AlgorithmBacktracking, 4)
	img, err := Rasterize(m, 80, 80, 2)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "cell interior is background")

	r, g, b, _ = color.GrayModel.Convert(img.At(0, 40)).RGBA()
	assert.Less(t, r+g+b, uint32(3*0xffff), "left boundary is drawn")
}

func TestEncodePNG(t *testing.T) {
	m := generate(t, maze.AlgorithmWilson, 5)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, m, 50, 50, 1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())

	assert.ErrorIs(t, EncodePNG(&buf, m, -1, 50, 1), ErrInvalidCanvas)
}
