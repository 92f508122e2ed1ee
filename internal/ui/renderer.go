package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/maze"
)

const (
	playerRune = '@'
	goalRune   = '*'
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x66FCF1))
	playerStyle = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xF72585)).Bold(true)
	goalStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x7209B7)).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

// CellOrigin returns the screen column and row at the center of the maze cell
// at p, matching the layout of maze.Grid.String.
func CellOrigin(p maze.Position) (col, row int) {
	return 4*p.X + 2, 2*p.Y + 1
}

// MazeHeight returns the number of screen rows a maze of size n occupies.
func MazeHeight(n int) int {
	return 2*n + 1
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Show flushes the frame.
func (r *Renderer) Show() {
	r.screen.Show()
}

// RenderMaze draws the maze walls.
func (r *Renderer) RenderMaze(grid *maze.Grid) {
	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
	for y, line := range lines {
		for x, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			r.screen.SetContent(x, y, ch, wallStyle)
		}
	}
}

// RenderMarkers draws the goal and then the player on top.
func (r *Renderer) RenderMarkers(player, goal maze.Position) {
	gx, gy := CellOrigin(goal)
	r.screen.SetContent(gx, gy, goalRune, goalStyle)

	px, py := CellOrigin(player)
	r.screen.SetContent(px, py, playerRune, playerStyle)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, textStyle)
}

// RenderPanel draws lines in a filled box centered on the screen.
func (r *Renderer) RenderPanel(lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := len(lines) + 2

	sw, sh := r.screen.Size()
	x0 := max(0, (sw-width)/2)
	y0 := max(0, (sh-height)/2)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x0+x, y0+y, ' ', panelStyle)
		}
	}
	for i, line := range lines {
		r.screen.DrawText(x0+2, y0+1+i, line, panelStyle)
	}
}
