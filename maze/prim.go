package maze

import (
	"fmt"
	"math"
)

// Prim grows a spanning tree from a random cell by repeatedly opening a
// uniformly random frontier edge, optionally adding extra random edges
// afterwards to create loops.
type Prim struct {
	base
	extraEdgeProbability float64
	extraEdges           bool
}

// NewPrim returns a randomized-Prim generator for a size×size grid.
func NewPrim(size int, opts ...Option) (*Prim, error) {
	o := newOptions(opts)
	if o.extraEdges && !validProbability(o.extraEdgeProbability) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, o.extraEdgeProbability)
	}
	b, err := newBase(size, o)
	if err != nil {
		return nil, err
	}
	return &Prim{
		base:                 b,
		extraEdgeProbability: o.extraEdgeProbability,
		extraEdges:           o.extraEdges,
	}, nil
}

// Algorithm implements Generator.
func (p *Prim) Algorithm() Algorithm {
	return AlgorithmPrim
}

// Generate builds the spanning tree and, when configured, the extra edges.
func (p *Prim) Generate() (*Maze, error) {
	if err := p.begin(); err != nil {
		return nil, err
	}

	m := p.maze
	total := len(m.cells)
	if total == 0 {
		return m, nil
	}

	f := newFrontier()
	start := p.rng.IntN(total)
	m.cells[start].visited = true
	inside := 1
	p.expand(start, f)

	for f.len() > 0 && inside < total {
		e := f.removeAt(p.rng.IntN(f.len()))

		var outside int
		switch {
		case m.cells[e.a].visited && !m.cells[e.b].visited:
			outside = e.b
		case m.cells[e.b].visited && !m.cells[e.a].visited:
			outside = e.a
		default:
			continue
		}

		m.openWall(e.a, e.b)
		m.cells[outside].visited = true
		inside++
		p.expand(outside, f)
	}

	if inside != total {
		return nil, fmt.Errorf("%w: frontier exhausted with %d of %d cells inside", ErrInternalInconsistency, inside, total)
	}

	perfect := true
	if p.extraEdges {
		added, err := p.AddRandomEdges(p.extraEdgeProbability)
		if err != nil {
			return nil, err
		}
		perfect = added == 0
	}
	return p.finish(perfect)
}

// expand drops frontier edges that now join two inside cells and adds an
// edge from cell to each neighbor still outside.
func (p *Prim) expand(cell int, f *frontier) {
	var buf [4]int
	for _, n := range p.maze.neighborIndices(cell, buf[:0]) {
		if p.maze.cells[n].visited {
			f.remove(keyOf(cell, n))
			continue
		}
		f.add(cell, n)
	}
}

// AddRandomEdges opens each still-closed internal wall independently with the
// given probability, one trial per unordered adjacent pair. It returns the
// number of walls opened. The maze stays connected but is no longer perfect.
func (p *Prim) AddRandomEdges(probability float64) (int, error) {
	if math.IsNaN(probability) || !validProbability(probability) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidProbability, probability)
	}
	if !p.generated {
		return 0, ErrNotGenerated
	}

	m := p.maze
	added := 0
	for i := range m.cells {
		for _, d := range [2]Direction{East, South} {
			n, ok := m.neighborIndex(i, d)
			if !ok || m.connections.Has(keyOf(i, n)) {
				continue
			}
			if p.rng.Float64() < probability {
				m.openWall(i, n)
				added++
			}
		}
	}
	return added, nil
}

type frontierEdge struct {
	a, b int
}

// frontier is a set of candidate edges supporting O(1) random removal.
type frontier struct {
	edges []frontierEdge
	index map[edgeKey]int
}

func newFrontier() *frontier {
	return &frontier{index: make(map[edgeKey]int)}
}

func (f *frontier) len() int {
	return len(f.edges)
}

// add inserts the edge unless the same unordered pair is already present.
func (f *frontier) add(a, b int) {
	key := keyOf(a, b)
	if _, ok := f.index[key]; ok {
		return
	}
	f.index[key] = len(f.edges)
	f.edges = append(f.edges, frontierEdge{a: a, b: b})
}

func (f *frontier) remove(key edgeKey) {
	if i, ok := f.index[key]; ok {
		f.removeAt(i)
	}
}

// removeAt swaps the i-th edge with the last one and pops it.
func (f *frontier) removeAt(i int) frontierEdge {
	e := f.edges[i]
	last := len(f.edges) - 1
	f.edges[i] = f.edges[last]
	f.index[keyOf(f.edges[i].a, f.edges[i].b)] = i
	f.edges = f.edges[:last]
	delete(f.index, keyOf(e.a, e.b))
	return e
}
