package maze

import "fmt"

// Wilson builds a uniform spanning tree with loop-erased random walks from
// unvisited cells to the growing tree.
type Wilson struct {
	base
}

// NewWilson returns a Wilson's-algorithm generator for a size×size grid.
func NewWilson(size int, opts ...Option) (*Wilson, error) {
	o := newOptions(opts)
	if err := o.rejectExtraEdges(AlgorithmWilson); err != nil {
		return nil, err
	}
	b, err := newBase(size, o)
	if err != nil {
		return nil, err
	}
	return &Wilson{base: b}, nil
}

// Algorithm implements Generator.
func (w *Wilson) Algorithm() Algorithm {
	return AlgorithmWilson
}

// Generate carves walks until every cell belongs to the tree. Walks start from
// the first unvisited cell in row-major order.
func (w *Wilson) Generate() (*Maze, error) {
	if err := w.begin(); err != nil {
		return nil, err
	}

	m := w.maze
	total := len(m.cells)
	if total == 0 {
		return m, nil
	}

	m.cells[w.rng.IntN(total)].visited = true
	remaining := total - 1

	pathIndex := make([]int, total)
	for i := range pathIndex {
		pathIndex[i] = -1
	}

	next := 0
	for remaining > 0 {
		for next < total && m.cells[next].visited {
			next++
		}
		if next == total {
			return nil, fmt.Errorf("%w: %d cells left but none unvisited", ErrInternalInconsistency, remaining)
		}

		path, err := w.walk(next, pathIndex)
		if err != nil {
			return nil, err
		}
		remaining -= w.carve(path)
	}

	return w.finish(true)
}

// walk performs a loop-erased random walk from start until it steps onto a
// visited cell. The returned path ends with that visited cell. pathIndex maps
// a cell to its position in the current path (-1 when absent) and is reset
// before returning.
func (w *Wilson) walk(start int, pathIndex []int) ([]int, error) {
	m := w.maze
	path := make([]int, 0, 16)
	defer func() {
		for _, c := range path {
			pathIndex[c] = -1
		}
	}()

	var buf [4]int
	current := start
	for !m.cells[current].visited {
		if i := pathIndex[current]; i >= 0 {
			// Loop: erase everything walked since the first visit.
			for _, erased := range path[i+1:] {
				pathIndex[erased] = -1
			}
			path = path[:i+1]
		} else {
			pathIndex[current] = len(path)
			path = append(path, current)
		}

		moves := m.neighborIndices(current, buf[:0])
		if len(moves) == 0 {
			return nil, fmt.Errorf("%w: cell %s has no valid direction", ErrInternalInconsistency, m.position(current))
		}
		current = moves[w.rng.IntN(len(moves))]
	}

	return append(path, current), nil
}

// carve opens the walls along path and marks its cells visited. It returns the
// number of newly visited cells; the final, already visited cell is not counted.
func (w *Wilson) carve(path []int) int {
	m := w.maze
	carved := 0
	for i := 0; i+1 < len(path); i++ {
		m.openWall(path[i], path[i+1])
		if !m.cells[path[i]].visited {
			m.cells[path[i]].visited = true
			carved++
		}
	}
	return carved
}
