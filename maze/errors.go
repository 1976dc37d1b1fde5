package maze

import "errors"

// Maze-related errors.
var (
	ErrInvalidGridSize       = errors.New("invalid grid size")
	ErrInvalidEdge           = errors.New("cells are not adjacent")
	ErrOutOfBounds           = errors.New("cell is out of the maze")
	ErrAlreadyGenerated      = errors.New("maze already generated")
	ErrNotGenerated          = errors.New("maze not generated yet")
	ErrInvalidProbability    = errors.New("probability must be within [0, 1]")
	ErrUnknownAlgorithm      = errors.New("unknown maze algorithm")
	ErrInternalInconsistency = errors.New("internal maze inconsistency")

	ErrInconsistentWalls = errors.New("wall flags disagree with edge set")
	ErrDisconnected      = errors.New("maze is not connected")
	ErrCycle             = errors.New("maze contains a cycle")
)
