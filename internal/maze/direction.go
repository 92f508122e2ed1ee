package maze

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate. X is the column, Y the row (growing downward).
type Position struct {
	X, Y int
}

// Add returns p shifted one cell in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four sides of a cell.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in neighbor iteration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction facing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// String returns a lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection accepts direction names, compass names and WASD letters.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "top", "north", "w":
		return Up, nil
	case "right", "east", "d":
		return Right, nil
	case "down", "bottom", "south", "s":
		return Down, nil
	case "left", "west", "a":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
