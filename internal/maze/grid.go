// Package maze provides the square cell grid a maze is carved into and the
// randomized depth-first backtracker that carves it.
//
// Every cell carries one wall flag per side. Walls are only ever cleared in
// facing pairs, so two adjacent cells always agree about the edge between
// them, and walls on the outer boundary are never cleared.
package maze

import (
	"fmt"
	"iter"
	"strings"
)

// Cell is a single grid unit.
type Cell struct {
	walls   [4]bool
	visited bool
}

// HasWall reports whether the side d of the cell is walled.
func (c Cell) HasWall(d Direction) bool {
	if !d.Valid() {
		return true
	}
	return c.walls[d]
}

// Grid is an N×N arena of cells stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a fully walled n×n grid.
func NewGrid(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	cells := make([]Cell, n*n)
	for i := range cells {
		cells[i] = Cell{walls: [4]bool{true, true, true, true}}
	}

	return &Grid{size: n, cells: cells}, nil
}

// Size returns N, the number of cells along each side.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

func (g *Grid) index(p Position) int {
	return p.Y*g.size + p.X
}

// Cell returns a copy of the cell at p. Out-of-bounds positions read as a
// fully walled cell.
func (g *Grid) Cell(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{walls: [4]bool{true, true, true, true}}
	}
	return g.cells[g.index(p)]
}

// HasWall reports whether the cell at p is walled on side d.
func (g *Grid) HasWall(p Position, d Direction) bool {
	return g.Cell(p).HasWall(d)
}

// WallMask packs the walls of the cell at p into bits 1<<Direction.
func (g *Grid) WallMask(p Position) uint8 {
	c := g.Cell(p)
	var mask uint8
	for _, d := range Directions {
		if c.walls[d] {
			mask |= 1 << d
		}
	}
	return mask
}

// Neighbors yields the in-bounds cells adjacent to p in direction order.
func (g *Grid) Neighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range Directions {
			n := p.Add(d)
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// directionBetween returns the side of a that faces b.
func directionBetween(a, b Position) (Direction, bool) {
	for _, d := range Directions {
		if a.Add(d) == b {
			return d, true
		}
	}
	return 0, false
}

// RemoveWallBetween clears the wall shared by a and b on both cells.
func (g *Grid) RemoveWallBetween(a, b Position) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v and %v outside %dx%d grid", ErrNotAdjacent, a, b, g.size, g.size)
	}
	d, ok := directionBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	g.cells[g.index(a)].walls[d] = false
	g.cells[g.index(b)].walls[d.Opposite()] = false
	return nil
}

// Passages counts the edges between adjacent cells whose walls are cleared.
func (g *Grid) Passages() int {
	count := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := g.cells[g.index(Position{X: x, Y: y})]
			// Count each edge once, from its left or upper cell.
			if x < g.size-1 && !c.walls[Right] {
				count++
			}
			if y < g.size-1 && !c.walls[Down] {
				count++
			}
		}
	}
	return count
}

func (g *Grid) visited(p Position) bool {
	return g.cells[g.index(p)].visited
}

func (g *Grid) markVisited(p Position) {
	g.cells[g.index(p)].visited = true
}

// String draws the grid with +---+ corners and | walls, one text row per
// cell row plus one per horizontal wall line.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+")
	for x := 0; x < g.size; x++ {
		if g.HasWall(Position{X: x, Y: 0}, Up) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.size; y++ {
		if g.HasWall(Position{X: 0, Y: y}, Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.size; x++ {
			b.WriteString("   ")
			if g.HasWall(Position{X: x, Y: y}, Right) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for x := 0; x < g.size; x++ {
			if g.HasWall(Position{X: x, Y: y}, Down) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
