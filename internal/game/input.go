package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/maze"
)

// DirectionForKey maps arrow keys and WASD to a direction.
func DirectionForKey(key tcell.Key, r rune) (maze.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return maze.Up, true
	case tcell.KeyRight:
		return maze.Right, true
	case tcell.KeyDown:
		return maze.Down, true
	case tcell.KeyLeft:
		return maze.Left, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return maze.Up, true
		case 'd', 'D':
			return maze.Right, true
		case 's', 'S':
			return maze.Down, true
		case 'a', 'A':
			return maze.Left, true
		}
	}
	return 0, false
}
