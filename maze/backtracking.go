package maze

import "fmt"

// Backtracking carves a maze with a randomized depth-first search. The search
// keeps its own stack, so its depth is bounded only by memory.
type Backtracking struct {
	base
	start       CellPosition
	randomStart bool
}

// frame is one level of the depth-first search: a cell and the directions
// still to try from it.
type frame struct {
	cell int
	dirs [4]Direction
	next int
}

// NewBacktracking returns a recursive-backtracking generator for a size×size
// grid. The search starts at (0,0) unless WithStart or WithRandomStart is given.
func NewBacktracking(size int, opts ...Option) (*Backtracking, error) {
	o := newOptions(opts)
	if err := o.rejectExtraEdges(AlgorithmBacktracking); err != nil {
		return nil, err
	}
	b, err := newBase(size, o)
	if err != nil {
		return nil, err
	}

	g := &Backtracking{base: b, randomStart: o.randomStart}
	if o.start != nil && size > 0 {
		if !b.maze.InBound(o.start.Row, o.start.Col) {
			return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, *o.start)
		}
		g.start = *o.start
	}
	return g, nil
}

// Algorithm implements Generator.
func (g *Backtracking) Algorithm() Algorithm {
	return AlgorithmBacktracking
}

// Generate carves the maze, then opens any cell left fully enclosed.
func (g *Backtracking) Generate() (*Maze, error) {
	if err := g.begin(); err != nil {
		return nil, err
	}

	m := g.maze
	total := len(m.cells)
	if total == 0 {
		return m, nil
	}

	start := m.index(g.start)
	if g.randomStart {
		start = g.rng.IntN(total)
	}
	m.cells[start].visited = true
	stack := []frame{g.newFrame(start)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for top.next < len(top.dirs) {
			d := top.dirs[top.next]
			top.next++

			n, ok := m.neighborIndex(top.cell, d)
			if !ok || m.cells[n].visited {
				continue
			}
			m.openWall(top.cell, n)
			m.cells[n].visited = true
			stack = append(stack, g.newFrame(n))
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	if _, err := m.openEnclosedCells(g.rng); err != nil {
		return nil, err
	}
	return g.finish(true)
}

// newFrame returns a frame for cell with a freshly shuffled direction order.
func (g *Backtracking) newFrame(cell int) frame {
	f := frame{cell: cell, dirs: directions}
	g.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}
