package maze

import "errors"

var (
	// ErrInvalidSize is returned when a grid is requested with fewer than one cell per side.
	ErrInvalidSize = errors.New("invalid maze size")
	// ErrNotAdjacent is returned when a wall is removed between cells that do not share an edge.
	ErrNotAdjacent = errors.New("cells are not adjacent")
)
