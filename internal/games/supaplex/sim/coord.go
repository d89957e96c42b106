// Package sim provides the tile simulation core for Supaplex.
// It is UI-agnostic and deterministic: the same level description and the
// same input sequence always produce the same grid.
package sim

import "fmt"

// Direction is a facing or movement direction on the grid.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// RotateLeft returns the direction a quarter turn counter-clockwise.
func (d Direction) RotateLeft() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirRight:
		return DirUp
	case DirDown:
		return DirRight
	case DirLeft:
		return DirDown
	default:
		return DirNone
	}
}

// RotateRight returns the direction a quarter turn clockwise.
func (d Direction) RotateRight() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return DirNone
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirNone
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// Coord represents a 2D cell coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Offset returns a new Coord one step in the given direction.
func (c Coord) Offset(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Float converts the cell coordinate to a fractional one.
func (c Coord) Float() FCoord {
	return FCoord{X: float64(c.X), Y: float64(c.Y)}
}

// Interpolated returns the sub-cell position of a tile standing at c
// that is still animating its last move.
func (c Coord) Interpolated(t Tile) FCoord {
	return c.Float().OffsetTime(t)
}

// FCoord is a fractional grid position used for animation interpolation.
type FCoord struct {
	X float64
	Y float64
}

// F is a convenience constructor for FCoord.
func F(x, y float64) FCoord {
	return FCoord{X: x, Y: y}
}

// Offset returns a new FCoord one whole cell in the given direction.
func (f FCoord) Offset(d Direction) FCoord {
	dx, dy := d.Delta()
	return FCoord{X: f.X + float64(dx), Y: f.Y + float64(dy)}
}

// OffsetTime shifts the position back along the tile's facing by the
// remaining move fraction. A tile that just entered a cell (timer 1.0) is
// drawn one full cell behind it; at timer 0 it sits on the cell.
func (f FCoord) OffsetTime(t Tile) FCoord {
	upd := t.Timer
	if upd < 0 {
		upd = 0
	}

	switch t.Facing {
	case DirUp:
		return FCoord{X: f.X, Y: f.Y + upd}
	case DirRight:
		return FCoord{X: f.X - upd, Y: f.Y}
	case DirDown:
		return FCoord{X: f.X, Y: f.Y - upd}
	case DirLeft:
		return FCoord{X: f.X + upd, Y: f.Y}
	default:
		return f
	}
}
