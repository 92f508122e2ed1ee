package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/telemetry"
	"github.com/samdwyer/mazewalk/internal/ui"
)

// menuBackgroundSize is the size of the decorative maze behind the menu.
const menuBackgroundSize = 10

// Game holds the terminal front end's state around the current session.
type Game struct {
	screen       *ui.Screen
	renderer     *ui.Renderer
	difficulties *gamedata.DifficultyRegistry
	logger       *log.Logger
	cfg          Config

	session  *Session
	view     Screen
	selected *gamedata.DifficultyDef
	size     int
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, difficulties *gamedata.DifficultyRegistry, logger *log.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, difficulties, logger), nil
}

func newGame(screen *ui.Screen, cfg Config, difficulties *gamedata.DifficultyRegistry, logger *log.Logger) *Game {
	selected := difficulties.ByID(cfg.Difficulty)
	if selected == nil {
		selected = difficulties.Default()
	}

	return &Game{
		screen:       screen,
		renderer:     ui.NewRenderer(screen),
		difficulties: difficulties,
		logger:       logger,
		cfg:          cfg,
		view:         ScreenMenu,
		selected:     selected,
		size:         cfg.StartSize(difficulties),
		running:      true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.setup(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

// setup creates the first session: the menu backdrop, or the first level when
// the menu is skipped.
func (g *Game) setup(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("maze.start_size", g.size),
		attribute.String("difficulty", g.selected.ID),
		attribute.Bool("skip_menu", g.cfg.SkipMenu),
	)

	var err error
	if g.cfg.SkipMenu {
		err = g.startLevel(initCtx, g.size, g.cfg.Seed)
	} else {
		// The menu is drawn over a small decorative maze.
		g.session, err = NewSession(initCtx, menuBackgroundSize, 0)
	}
	initSpan.End()
	return err
}

// startLevel replaces the current session with a fresh maze.
func (g *Game) startLevel(ctx context.Context, size int, seed int64) error {
	session, err := NewSession(ctx, size, seed)
	if err != nil {
		return fmt.Errorf("starting %dx%d maze: %w", size, size, err)
	}

	g.session = session
	g.size = size
	g.view = ScreenPlaying
	if session.Won() {
		g.view = ScreenLevelComplete
	}

	g.logger.Info("maze started", "session", session.ID, "size", size, "seed", session.Seed)
	return nil
}

// render draws the current view.
func (g *Game) render() {
	g.renderer.Clear()
	g.renderer.RenderMaze(g.session.Grid())

	status := ui.MazeHeight(g.session.Size) + 1
	switch g.view {
	case ScreenMenu:
		lines := []string{"MAZEWALK", ""}
		for _, d := range g.difficulties.All() {
			marker := "  "
			if d.ID == g.selected.ID {
				marker = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s  %s (%dx%d)", marker, d.Key, d.Name, d.Size, d.Size))
		}
		lines = append(lines, "", "Enter: start   q: quit")
		g.renderer.RenderPanel(lines)

	case ScreenPlaying:
		g.renderer.RenderMarkers(g.session.Player(), g.session.Goal())
		g.renderer.RenderMessage(fmt.Sprintf("%dx%d  moves: %d   arrows/WASD: move  r: new maze  q: quit",
			g.session.Size, g.session.Size, g.session.Moves()), status)

	case ScreenLevelComplete:
		g.renderer.RenderMarkers(g.session.Player(), g.session.Goal())
		g.renderer.RenderPanel([]string{
			"Level Complete!",
			fmt.Sprintf("Completed %dx%d maze in %d moves.", g.session.Size, g.session.Size, g.session.Moves()),
			"",
			fmt.Sprintf("Enter: next level (%dx%d)   m: menu   q: quit", NextSize(g.size), NextSize(g.size)),
		})
	}

	g.renderer.Show()
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes one key press.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC, key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		g.running = false
		return
	}

	var err error
	switch g.view {
	case ScreenMenu:
		switch {
		case key == tcell.KeyEnter:
			err = g.startLevel(ctx, g.selected.Size, g.cfg.Seed)
		case key == tcell.KeyUp:
			g.cycleDifficulty(-1)
		case key == tcell.KeyDown:
			g.cycleDifficulty(1)
		case key == tcell.KeyRune:
			if d := g.difficulties.ByKey(r); d != nil {
				g.selected = d
			}
		}

	case ScreenPlaying:
		if d, ok := DirectionForKey(key, r); ok {
			g.tryMove(ctx, d)
		} else if key == tcell.KeyRune && (r == 'r' || r == 'R') {
			err = g.startLevel(ctx, g.size, 0)
		}

	case ScreenLevelComplete:
		switch {
		case key == tcell.KeyEnter, key == tcell.KeyRune && (r == 'n' || r == 'N'):
			err = g.startLevel(ctx, NextSize(g.size), 0)
		case key == tcell.KeyRune && (r == 'm' || r == 'M'):
			g.view = ScreenMenu
		}
	}

	if err != nil {
		g.logger.Error("could not start maze", "err", err)
	}
}

// tryMove attempts to move the player one cell.
func (g *Game) tryMove(ctx context.Context, d maze.Direction) {
	if !g.session.Move(ctx, d) {
		return
	}
	if g.session.Won() {
		g.view = ScreenLevelComplete
		g.logger.Info("level complete",
			"session", g.session.ID,
			"size", g.session.Size,
			"moves", g.session.Moves(),
			"elapsed", g.session.Elapsed().Round(time.Millisecond),
		)
	}
}

// cycleDifficulty moves the menu selection by delta, wrapping around.
func (g *Game) cycleDifficulty(delta int) {
	all := g.difficulties.All()
	for i := range all {
		if all[i].ID == g.selected.ID {
			next := (i + delta + len(all)) % len(all)
			g.selected = &all[next]
			return
		}
	}
}
