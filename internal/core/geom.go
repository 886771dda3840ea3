// Package core provides the fundamental grid types for snek.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Dir is a movement direction on the grid.
//
// The least significant bit is the sign within an axis and the next bit is the
// axis itself (0 = x, 1 = y), so perpendicularity is a single mask compare.
type Dir uint8

const (
	DirLeft  Dir = 0b00
	DirRight Dir = 0b01
	DirUp    Dir = 0b10
	DirDown  Dir = 0b11
)

const axisBit = 0b10

// Dirs lists every direction in encoding order.
var Dirs = [4]Dir{DirLeft, DirRight, DirUp, DirDown}

// IsPerpendicular reports whether d and other lie on different axes.
func (d Dir) IsPerpendicular(other Dir) bool {
	return d&axisBit != other&axisBit
}

// Opposite returns the direction on the same axis with the other sign.
func (d Dir) Opposite() Dir {
	return d ^ 0b01
}

// Vertical reports whether d moves along the y axis.
func (d Dir) Vertical() bool {
	return d&axisBit != 0
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDir converts a direction name back into a Dir.
func ParseDir(s string) (Dir, bool) {
	for _, d := range Dirs {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a compact representation, handy when logging many of these.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// MoveWrapping moves c one cell in dir on a w by h field, wrapping around the
// edges.
func (c Coord) MoveWrapping(dir Dir, w, h int) Coord {
	switch dir {
	case DirUp:
		c.Y = (c.Y + h - 1) % h
	case DirDown:
		c.Y = (c.Y + 1) % h
	case DirLeft:
		c.X = (c.X + w - 1) % w
	case DirRight:
		c.X = (c.X + 1) % w
	}
	return c
}

// MoveBumping moves c one cell in dir on a w by h field.
// Returns false if the result would fall outside the field.
func (c Coord) MoveBumping(dir Dir, w, h int) (Coord, bool) {
	switch {
	case dir == DirUp && c.Y > 0:
		c.Y--
	case dir == DirDown && c.Y < h-1:
		c.Y++
	case dir == DirLeft && c.X > 0:
		c.X--
	case dir == DirRight && c.X < w-1:
		c.X++
	default:
		return c, false
	}
	return c, true
}

// Compare returns the direction pointing from c toward other, where both are
// adjacent cells of a w by h field that wraps around its edges.
//
// Wrap adjacency wins over plain ordering on each axis, and the x axis is
// checked before the y axis. Compare panics if the cells are equal or not
// adjacent: the snake invariants are already broken upstream in that case.
func (c Coord) Compare(other Coord, w, h int) Dir {
	var dir Dir
	switch {
	case c.X != other.X:
		switch {
		case c.X == 0 && other.X == w-1:
			dir = DirLeft
		case c.X == w-1 && other.X == 0:
			dir = DirRight
		case c.X > other.X:
			dir = DirLeft
		default:
			dir = DirRight
		}
	case c.Y != other.Y:
		switch {
		case c.Y == 0 && other.Y == h-1:
			dir = DirUp
		case c.Y == h-1 && other.Y == 0:
			dir = DirDown
		case c.Y > other.Y:
			dir = DirUp
		default:
			dir = DirDown
		}
	default:
		panic(fmt.Sprintf("core: compare on identical cells %v and %v", c, other))
	}

	if c.MoveWrapping(dir, w, h) != other {
		panic(fmt.Sprintf("core: compare on non-adjacent cells %v and %v", c, other))
	}
	return dir
}

// InBounds reports whether c lies inside a w by h field.
func (c Coord) InBounds(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}
