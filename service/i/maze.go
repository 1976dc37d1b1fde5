package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/google/uuid"
)

// CreateMazeRequest describes a maze to generate. A nil Seed picks one from
// the clock.
type CreateMazeRequest struct {
	Algorithm            string
	Size                 int
	Seed                 *int64
	ExtraEdgeProbability float64
	Owner                string
}

// Canvas is the target area of a rendered maze.
type Canvas struct {
	Width     int
	Height    int
	Thickness float64
}

// MazeService creates mazes and serves their views.
type MazeService interface {
	Create(ctx context.Context, req CreateMazeRequest) (*dmn.Snapshot, error)
	Snapshot(ctx context.Context, id uuid.UUID) (*dmn.Snapshot, error)
	Lines(ctx context.Context, id uuid.UUID, canvas Canvas) ([]render.Line, error)
	PNG(ctx context.Context, id uuid.UUID, canvas Canvas, w io.Writer) error
	Recent(ctx context.Context, limit int64) ([]*dmn.Recipe, error)
	Owned(ctx context.Context, owner string, limit int64) ([]*dmn.Recipe, error)
}
