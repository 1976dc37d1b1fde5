package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// directions is the fixed neighbor order used everywhere before shuffling.
var directions = [4]Direction{North, South, East, West}

var directionDeltas = [4]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// Directions returns the four directions in North, South, East, West order.
func Directions() []Direction {
	return directions[:]
}

// String returns the direction name (North, South, East, West).
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the row/col offset of one step towards d.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Move returns the position one step towards d. The result may be out of bounds.
func (p CellPosition) Move(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single cell in a maze grid.
// A closed wall on the outer border is the maze boundary, not an internal wall.
type Cell struct {
	Row       int  `json:"row"`        // Row index of the cell
	Col       int  `json:"col"`        // Column index of the cell
	NorthWall bool `json:"north_wall"` // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool `json:"south_wall"` // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool `json:"east_wall"`  // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool `json:"west_wall"`  // WestWall indicates whether there is a wall on the west side of the cell.

	visited bool // set while a generator runs, cleared when it finishes
}

// Position returns the cell's grid position.
func (c Cell) Position() CellPosition {
	return CellPosition{Row: c.Row, Col: c.Col}
}

// HasWall reports whether the wall on side d is closed.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// OpenWalls returns the number of open sides.
func (c Cell) OpenWalls() int {
	open := 0
	for _, d := range directions {
		if !c.HasWall(d) {
			open++
		}
	}
	return open
}

func (c Cell) enclosed() bool {
	return c.NorthWall && c.SouthWall && c.EastWall && c.WestWall
}

func (c *Cell) setWall(d Direction, closed bool) {
	switch d {
	case North:
		c.NorthWall = closed
	case South:
		c.SouthWall = closed
	case East:
		c.EastWall = closed
	case West:
		c.WestWall = closed
	}
}

// Edge is an opened wall between two adjacent cells. A always precedes B in
// row-major order.
type Edge struct {
	A CellPosition `json:"a"`
	B CellPosition `json:"b"`
}

func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}
