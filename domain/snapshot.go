package domain

import "github.com/beka-birhanu/vinom-maze/maze"

// Snapshot is the read model of a generated maze.
type Snapshot struct {
	Recipe    Recipe      `json:"recipe"`
	Cells     []maze.Cell `json:"cells"`
	Edges     []maze.Edge `json:"edges"`
	EdgeCount int         `json:"edge_count"`
	DeadEnds  int         `json:"dead_ends"`
	Perfect   bool        `json:"perfect"`
}

// NewSnapshot captures m, which must have been generated from r.
func NewSnapshot(r Recipe, m *maze.Maze) *Snapshot {
	return &Snapshot{
		Recipe:    r,
		Cells:     m.Cells(),
		Edges:     m.Edges(),
		EdgeCount: m.EdgeCount(),
		DeadEnds:  m.DeadEnds(),
		Perfect:   m.Size() == 0 || m.EdgeCount() == m.Size()*m.Size()-1,
	}
}

// Maze rebuilds the maze from the captured edges without regenerating it.
func (s *Snapshot) Maze() (*maze.Maze, error) {
	return maze.FromEdges(s.Recipe.Size, s.Edges)
}
