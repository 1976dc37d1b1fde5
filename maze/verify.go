package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Verify checks the maze invariants:
//   - every edge joins two adjacent in-bound cells and appears once,
//   - a wall is open on both sides iff the matching edge exists,
//   - boundary walls are closed,
//   - the edges connect every cell,
//   - with perfect set, the edges form no cycle.
func (m *Maze) Verify(perfect bool) error {
	if err := m.verifyWalls(); err != nil {
		return err
	}
	if len(m.cells) == 0 {
		return nil
	}

	elems := make([]*disjoint.Element, len(m.cells))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	components := len(m.cells)
	for _, e := range m.edges {
		a, b := elems[m.index(e.A)], elems[m.index(e.B)]
		if a.Find() == b.Find() {
			if perfect {
				return fmt.Errorf("%w: edge %s closes a loop", ErrCycle, e)
			}
			continue
		}
		disjoint.Union(a, b)
		components--
	}

	if components != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, components)
	}
	return nil
}

func (m *Maze) verifyWalls() error {
	if len(m.edges) != m.connections.Size() {
		return fmt.Errorf("%w: %d edges but %d distinct connections", ErrInconsistentWalls, len(m.edges), m.connections.Size())
	}
	for _, e := range m.edges {
		if !m.InBound(e.A.Row, e.A.Col) || !m.InBound(e.B.Row, e.B.Col) {
			return fmt.Errorf("%w: edge %s out of bounds", ErrInconsistentWalls, e)
		}
		if _, ok := directionBetween(e.A, e.B); !ok {
			return fmt.Errorf("%w: edge %s joins non-adjacent cells", ErrInconsistentWalls, e)
		}
	}

	for i, c := range m.cells {
		for _, d := range directions {
			n, ok := m.neighborIndex(i, d)
			if !ok {
				if !c.HasWall(d) {
					return fmt.Errorf("%w: boundary wall %s of %s is open", ErrInconsistentWalls, d, c.Position())
				}
				continue
			}
			open := !c.HasWall(d)
			if open == m.cells[n].HasWall(d.Opposite()) {
				return fmt.Errorf("%w: %s side of %s disagrees with its neighbor", ErrInconsistentWalls, d, c.Position())
			}
			if open != m.connections.Has(keyOf(i, n)) {
				return fmt.Errorf("%w: %s side of %s disagrees with edge set", ErrInconsistentWalls, d, c.Position())
			}
		}
	}
	return nil
}
