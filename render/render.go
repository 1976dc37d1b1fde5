// Package render turns a maze into drawable primitives: wall line segments,
// a node/edge graph view and a rasterized PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gogpu/gg"
)

var (
	ErrInvalidCanvas    = errors.New("canvas width and height must be positive")
	ErrInvalidThickness = errors.New("wall thickness must be positive")
)

// Line is a segment drawn with the given stroke width.
type Line struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Thickness float64 `json:"thickness"`
}

// Point is a canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ellipse is described by its bounding box.
type Ellipse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func validate(width, height int, thickness float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	if thickness <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidThickness, thickness)
	}
	return nil
}

// WallLines scales the maze to a width×height canvas and returns one segment
// per closed south or east wall, followed by the top, left, bottom and right
// boundary. The top and left boundary stop one cell short of the far corner
// and the bottom and right boundary start one cell in, leaving an entrance at
// the top-right and an exit at the bottom-left.
func WallLines(m *maze.Maze, width, height int, thickness float64) ([]Line, error) {
	if err := validate(width, height, thickness); err != nil {
		return nil, err
	}
	if m.Size() == 0 {
		return nil, nil
	}

	w, h := float64(width), float64(height)
	cw, ch := w/float64(m.Size()), h/float64(m.Size())

	cells := m.Cells()
	lines := make([]Line, 0, len(cells)*2+4)
	for _, c := range cells {
		x := float64(c.Col) * cw
		y := float64(c.Row) * ch
		if c.SouthWall {
			lines = append(lines, Line{X1: x, Y1: y + ch, X2: x + cw, Y2: y + ch, Thickness: thickness})
		}
		if c.EastWall {
			lines = append(lines, Line{X1: x + cw, Y1: y, X2: x + cw, Y2: y + ch, Thickness: thickness})
		}
	}

	lines = append(lines,
		Line{X1: 0, Y1: 0, X2: w - cw, Y2: 0, Thickness: thickness},
		Line{X1: 0, Y1: 0, X2: 0, Y2: h - ch, Thickness: thickness},
		Line{X1: cw, Y1: h, X2: w, Y2: h, Thickness: thickness},
		Line{X1: w, Y1: ch, X2: w, Y2: h, Thickness: thickness},
	)
	return lines, nil
}

// NodePositions returns the center of every cell, keyed by position.
func NodePositions(m *maze.Maze, width, height int) (map[maze.CellPosition]Point, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	positions := make(map[maze.CellPosition]Point, m.Size()*m.Size())
	if m.Size() == 0 {
		return positions, nil
	}

	cw := float64(width) / float64(m.Size())
	ch := float64(height) / float64(m.Size())
	for _, c := range m.Cells() {
		positions[c.Position()] = Point{
			X: float64(c.Col)*cw + cw/2,
			Y: float64(c.Row)*ch + ch/2,
		}
	}
	return positions, nil
}

// GraphPrimitives draws the maze as a graph: one line per edge between cell
// centers and one circle of the given radius per cell.
func GraphPrimitives(m *maze.Maze, width, height int, radius float64) ([]Line, []Ellipse, error) {
	positions, err := NodePositions(m, width, height)
	if err != nil {
		return nil, nil, err
	}
	if radius <= 0 {
		return nil, nil, fmt.Errorf("%w: radius %v", ErrInvalidThickness, radius)
	}

	edges := m.Edges()
	lines := make([]Line, 0, len(edges))
	for _, e := range edges {
		a, b := positions[e.A], positions[e.B]
		lines = append(lines, Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Thickness: 1})
	}

	nodes := make([]Ellipse, 0, len(positions))
	for _, c := range m.Cells() {
		p := positions[c.Position()]
		nodes = append(nodes, Ellipse{X: p.X - radius, Y: p.Y - radius, Width: radius * 2, Height: radius * 2})
	}
	return lines, nodes, nil
}

// Rasterize draws the maze walls in black on a white width×height image.
func Rasterize(m *maze.Maze, width, height int, thickness float64) (image.Image, error) {
	dc, err := draw(m, width, height, thickness)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// EncodePNG rasterizes the maze and writes it to w as PNG.
func EncodePNG(w io.Writer, m *maze.Maze, width, height int, thickness float64) error {
	dc, err := draw(m, width, height, thickness)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func draw(m *maze.Maze, width, height int, thickness float64) (*gg.Context, error) {
	lines, err := WallLines(m, width, height, thickness)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	if len(lines) == 0 {
		return dc, nil
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(thickness)
	for _, l := range lines {
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	}
	if err := dc.Stroke(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("stroking walls: %w", err)
	}
	return dc, nil
}
