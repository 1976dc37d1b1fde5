package maze

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Option configures a generator.
type Option func(*options)

type options struct {
	seed        int64
	seeded      bool
	start       *CellPosition
	randomStart bool

	extraEdgeProbability float64
	extraEdges           bool
}

// WithSeed makes generation reproducible: two generators built with the same
// algorithm, size and seed produce identical mazes.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithStart sets the first carved cell of the backtracking generator.
func WithStart(p CellPosition) Option {
	return func(o *options) {
		o.start = &p
	}
}

// WithRandomStart lets the backtracking generator start on a uniformly random
// cell, border cells included.
func WithRandomStart() Option {
	return func(o *options) {
		o.randomStart = true
	}
}

// WithExtraEdgeProbability makes the Prim generator open every remaining
// internal wall with probability p once the spanning tree is built. The other
// generators only accept p == 0.
func WithExtraEdgeProbability(p float64) Option {
	return func(o *options) {
		o.extraEdgeProbability = p
		o.extraEdges = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	return o
}

// newRand returns the PCG stream for seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// rejectExtraEdges fails when extra edges are requested from a generator
// that always produces a perfect maze.
func (o options) rejectExtraEdges(alg Algorithm) error {
	if o.extraEdges && o.extraEdgeProbability != 0 {
		return fmt.Errorf("%w: %s does not add extra edges (got %v)", ErrInvalidProbability, alg, o.extraEdgeProbability)
	}
	return nil
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}
