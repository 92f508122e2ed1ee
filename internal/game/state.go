// Package game runs maze sessions: the terminal game loop, keyboard decoding
// and the level progression around the maze core.
package game

// Screen represents which screen the terminal game is showing.
type Screen int

const (
	// ScreenMenu shows difficulty selection over a decorative maze.
	ScreenMenu Screen = iota
	// ScreenPlaying accepts moves.
	ScreenPlaying
	// ScreenLevelComplete is shown once the goal is reached.
	ScreenLevelComplete
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}
