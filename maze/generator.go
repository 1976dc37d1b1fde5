package maze

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Algorithm names a maze generation algorithm.
type Algorithm string

const (
	AlgorithmPrim         Algorithm = "prim"
	AlgorithmWilson       Algorithm = "wilson"
	AlgorithmBacktracking Algorithm = "backtracking"
)

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmPrim, AlgorithmWilson, AlgorithmBacktracking}
}

// ParseAlgorithm maps a user supplied name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "prim", "prims":
		return AlgorithmPrim, nil
	case "wilson", "wilsons":
		return AlgorithmWilson, nil
	case "backtracking", "recursive-backtracking", "dfs":
		return AlgorithmBacktracking, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Generator builds one maze. Generate may be called only once per generator;
// later calls return ErrAlreadyGenerated.
type Generator interface {
	Generate() (*Maze, error)
	Algorithm() Algorithm
	Seed() int64
}

var (
	_ Generator = (*Prim)(nil)
	_ Generator = (*Wilson)(nil)
	_ Generator = (*Backtracking)(nil)
)

// New returns a generator for alg over a size×size grid.
func New(alg Algorithm, size int, opts ...Option) (Generator, error) {
	switch alg {
	case AlgorithmPrim:
		return NewPrim(size, opts...)
	case AlgorithmWilson:
		return NewWilson(size, opts...)
	case AlgorithmBacktracking:
		return NewBacktracking(size, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// base holds the state shared by every generator.
type base struct {
	maze      *Maze
	rng       *rand.Rand
	seed      int64
	generated bool
}

func newBase(size int, o options) (base, error) {
	m, err := NewMaze(size)
	if err != nil {
		return base{}, err
	}
	return base{
		maze: m,
		rng:  newRand(o.seed),
		seed: o.seed,
	}, nil
}

// Seed returns the seed of the generator's random stream.
func (b *base) Seed() int64 {
	return b.seed
}

// Maze returns the maze the generator writes into.
func (b *base) Maze() *Maze {
	return b.maze
}

// begin moves the generator out of its unstarted state.
func (b *base) begin() error {
	if b.generated {
		return ErrAlreadyGenerated
	}
	b.generated = true
	return nil
}

// finish checks the generated maze before handing it out.
func (b *base) finish(perfect bool) (*Maze, error) {
	for i := range b.maze.cells {
		b.maze.cells[i].visited = false
	}
	if err := b.maze.Verify(perfect); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
	return b.maze, nil
}
