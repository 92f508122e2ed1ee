// Package nav moves a player through a generated maze one cell at a time and
// detects arrival at the goal.
package nav

import "github.com/samdwyer/mazewalk/internal/maze"

// State is the navigator's play state.
type State int

const (
	// StatePlaying accepts moves.
	StatePlaying State = iota
	// StateWon is terminal; every move is ignored.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// AttemptMove returns the position one cell from from in direction d, or from
// itself when that side of the cell is walled. Boundary walls are never
// cleared, so the result is always inside the grid.
func AttemptMove(g *maze.Grid, from maze.Position, d maze.Direction) maze.Position {
	if g.HasWall(from, d) {
		return from
	}
	return from.Add(d)
}

// CheckWin reports whether the player stands on the goal.
func CheckWin(player, goal maze.Position) bool {
	return player.X == goal.X && player.Y == goal.Y
}

// Navigator tracks a single player's position against a fixed goal.
type Navigator struct {
	grid   *maze.Grid
	player maze.Position
	goal   maze.Position
	state  State
	moves  int
}

// New creates a navigator in StatePlaying.
func New(g *maze.Grid, start, goal maze.Position) *Navigator {
	return &Navigator{
		grid:   g,
		player: start,
		goal:   goal,
		state:  StatePlaying,
	}
}

// Move applies one step in direction d. It returns the player's position and
// whether the player moved; blocked moves and moves after winning leave
// everything unchanged.
func (n *Navigator) Move(d maze.Direction) (maze.Position, bool) {
	if n.state == StateWon {
		return n.player, false
	}

	next := AttemptMove(n.grid, n.player, d)
	if next == n.player {
		return n.player, false
	}

	n.player = next
	n.moves++
	n.CheckWin()
	return n.player, true
}

// CheckWin transitions to StateWon when the player is on the goal.
func (n *Navigator) CheckWin() bool {
	if CheckWin(n.player, n.goal) {
		n.state = StateWon
		return true
	}
	return false
}

// Player returns the current player position.
func (n *Navigator) Player() maze.Position {
	return n.player
}

// Goal returns the goal position.
func (n *Navigator) Goal() maze.Position {
	return n.goal
}

// State returns the current play state.
func (n *Navigator) State() State {
	return n.state
}

// Won reports whether the goal has been reached.
func (n *Navigator) Won() bool {
	return n.state == StateWon
}

// Moves returns the number of accepted moves.
func (n *Navigator) Moves() int {
	return n.moves
}
