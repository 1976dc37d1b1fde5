// Package mazeapi provides the request and response shapes of the maze endpoints.
package mazeapi

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Algorithm            string  `json:"algorithm" binding:"required"`
	Size                 int     `json:"size" binding:"required,min=1"`
	Seed                 *int64  `json:"seed"`
	ExtraEdgeProbability float64 `json:"extra_edge_probability" binding:"min=0,max=1"`
}

// CanvasQuery is the target area of a rendered maze.
type CanvasQuery struct {
	Width     int     `form:"width,default=800" binding:"min=1,max=4096"`
	Height    int     `form:"height,default=800" binding:"min=1,max=4096"`
	Thickness float64 `form:"thickness,default=2" binding:"gt=0"`
}

// ListQuery bounds list endpoints.
type ListQuery struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
}

// MazeResponse is a generated maze with its recipe.
type MazeResponse struct {
	*dmn.Snapshot
	ASCII string `json:"ascii,omitempty"`
}

// LinesResponse holds the wall segments of a maze scaled to a canvas.
type LinesResponse struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Lines  []render.Line `json:"lines"`
}

// AlgorithmsResponse lists the supported generation algorithms.
type AlgorithmsResponse struct {
	Algorithms []maze.Algorithm `json:"algorithms"`
}

// RecipesResponse lists maze recipes, newest first.
type RecipesResponse struct {
	Recipes []*dmn.Recipe `json:"recipes"`
}
