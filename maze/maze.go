/*
Package maze generates perfect mazes over square grids and exposes them as a
wall graph for rendering and collision queries.

A Maze is an N×N arena of Cell values with north/south/east/west wall flags
plus the set of opened walls (edges). Three interchangeable generators write
into it: randomized Prim, Wilson's loop-erased random walk and recursive
backtracking. Each generator owns a seedable random stream, so a seed always
reproduces the same maze.

Utility functions cover neighbor lookup, move validation, verification of the
spanning-tree invariants and ASCII visualization of the maze.
*/
package maze

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

const (
	// maxDimension bounds the side length so that size*size and packed edge
	// keys never overflow.
	maxDimension = 1 << 12
)

// edgeKey packs the row-major indices of an unordered cell pair, smaller first.
type edgeKey uint64

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey(uint64(a)<<32 | uint64(b))
}

// Maze is a square grid of cells and the set of opened walls between them.
// It is owned by one generator while generating and read-only afterwards.
type Maze struct {
	size        int                 // Side length (number of rows and columns)
	cells       []Cell              // Row-major cell arena
	edges       []Edge              // Opened walls in insertion order
	connections mapset.Set[edgeKey] // Canonical keys of edges
}

// NewMaze returns a size×size maze with every wall closed and no edges.
// A zero size yields an empty maze.
func NewMaze(size int) (*Maze, error) {
	if size < 0 || size > maxDimension {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}

	cells := make([]Cell, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells[row*size+col] = Cell{
				Row:       row,
				Col:       col,
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Maze{
		size:        size,
		cells:       cells,
		connections: mapset.New[edgeKey](),
	}, nil
}

// FromEdges rebuilds a size×size maze by opening edges in order.
func FromEdges(size int, edges []Edge) (*Maze, error) {
	m, err := NewMaze(size)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := m.OpenWall(e.A, e.B); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Size returns the number of rows (and columns) of the maze.
func (m *Maze) Size() int {
	return m.size
}

// InBound reports whether (row, col) lies inside the maze.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.size && col >= 0 && col < m.size
}

func (m *Maze) index(p CellPosition) int {
	return p.Row*m.size + p.Col
}

func (m *Maze) position(i int) CellPosition {
	return CellPosition{Row: i / m.size, Col: i % m.size}
}

// Cell returns a copy of the cell at p.
func (m *Maze) Cell(p CellPosition) (Cell, error) {
	if !m.InBound(p.Row, p.Col) {
		return Cell{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return m.cells[m.index(p)], nil
}

// Cells returns a row-major copy of every cell.
func (m *Maze) Cells() []Cell {
	cells := make([]Cell, len(m.cells))
	copy(cells, m.cells)
	return cells
}

// Edges returns a copy of the opened walls in the order they were opened.
func (m *Maze) Edges() []Edge {
	edges := make([]Edge, len(m.edges))
	copy(edges, m.edges)
	return edges
}

// EdgeCount returns the number of opened walls.
func (m *Maze) EdgeCount() int {
	return len(m.edges)
}

// AdjacentPairs returns the number of unordered adjacent cell pairs, i.e. the
// edge count of a maze with every internal wall open.
func (m *Maze) AdjacentPairs() int {
	if m.size == 0 {
		return 0
	}
	return 2 * m.size * (m.size - 1)
}

// NeighborsInBounds returns the in-bound cells adjacent to p in North, South,
// East, West order.
func (m *Maze) NeighborsInBounds(p CellPosition) []CellPosition {
	if !m.InBound(p.Row, p.Col) {
		return nil
	}
	var buf [4]int
	nbrs := m.neighborIndices(m.index(p), buf[:0])
	result := make([]CellPosition, 0, len(nbrs))
	for _, n := range nbrs {
		result = append(result, m.position(n))
	}
	return result
}

// neighborIndex returns the index of the cell next to i towards d.
func (m *Maze) neighborIndex(i int, d Direction) (int, bool) {
	next := m.position(i).Move(d)
	if !m.InBound(next.Row, next.Col) {
		return 0, false
	}
	return m.index(next), true
}

// neighborIndices appends the in-bound neighbors of i to buf in fixed order.
func (m *Maze) neighborIndices(i int, buf []int) []int {
	for _, d := range directions {
		if n, ok := m.neighborIndex(i, d); ok {
			buf = append(buf, n)
		}
	}
	return buf
}

// directionBetween returns the side of a that faces b, if they are adjacent.
func directionBetween(a, b CellPosition) (Direction, bool) {
	for _, d := range directions {
		if a.Move(d) == b {
			return d, true
		}
	}
	return 0, false
}

// OpenWall removes the wall between two adjacent cells on both sides and
// records the edge. Opening an already open wall is a no-op.
func (m *Maze) OpenWall(a, b CellPosition) error {
	if !m.InBound(a.Row, a.Col) || !m.InBound(b.Row, b.Col) {
		return fmt.Errorf("%w: %s-%s out of bounds", ErrInvalidEdge, a, b)
	}
	if _, ok := directionBetween(a, b); !ok {
		return fmt.Errorf("%w: %s-%s", ErrInvalidEdge, a, b)
	}
	m.openWall(m.index(a), m.index(b))
	return nil
}

// openWall opens the wall between adjacent cells a and b. It reports whether
// a new edge was recorded.
func (m *Maze) openWall(a, b int) bool {
	key := keyOf(a, b)
	if m.connections.Has(key) {
		return false
	}
	if a > b {
		a, b = b, a
	}
	from, to := m.position(a), m.position(b)
	d, _ := directionBetween(from, to)
	m.cells[a].setWall(d, false)
	m.cells[b].setWall(d.Opposite(), false)

	m.connections.Put(key)
	m.edges = append(m.edges, Edge{A: from, B: to})
	return true
}

// IsConnected reports whether the wall between adjacent cells a and b is open.
func (m *Maze) IsConnected(a, b CellPosition) bool {
	if !m.InBound(a.Row, a.Col) || !m.InBound(b.Row, b.Col) {
		return false
	}
	if _, ok := directionBetween(a, b); !ok {
		return false
	}
	return m.connections.Has(keyOf(m.index(a), m.index(b)))
}

// CanMove reports whether a player standing on from may step towards d,
// i.e. the destination is inside the maze and the connecting wall is down.
func (m *Maze) CanMove(from CellPosition, d Direction) bool {
	if !m.InBound(from.Row, from.Col) {
		return false
	}
	to := from.Move(d)
	if !m.InBound(to.Row, to.Col) {
		return false
	}
	return !m.cells[m.index(from)].HasWall(d) && !m.cells[m.index(to)].HasWall(d.Opposite())
}

// DeadEnds returns the number of cells with exactly one open wall.
func (m *Maze) DeadEnds() int {
	count := 0
	for _, c := range m.cells {
		if c.OpenWalls() == 1 {
			count++
		}
	}
	return count
}

// openEnclosedCells opens one wall towards a random neighbor for every cell
// whose four walls are closed. Cells that already have an opening are left
// untouched, so running it twice changes nothing the second time.
func (m *Maze) openEnclosedCells(rng *rand.Rand) (int, error) {
	if m.size <= 1 {
		return 0, nil
	}

	opened := 0
	var buf [4]int
	for i := range m.cells {
		if !m.cells[i].enclosed() {
			continue
		}
		nbrs := m.neighborIndices(i, buf[:0])
		if len(nbrs) == 0 {
			return opened, fmt.Errorf("%w: cell %s has no neighbors", ErrInternalInconsistency, m.position(i))
		}
		m.openWall(i, nbrs[rng.IntN(len(nbrs))])
		opened++
	}
	return opened, nil
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.size) + "\n")

	for row := 0; row < m.size; row++ {
		// Cell rows
		output.WriteString("|")
		for col := 0; col < m.size; col++ {
			if m.cells[row*m.size+col].EastWall {
				output.WriteString("   |")
			} else {
				output.WriteString("    ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.size; col++ {
			if m.cells[row*m.size+col].SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
