package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/nav"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// Session owns one maze and the player walking it. A new maze always gets a
// new Session; nothing carries over from the previous one.
type Session struct {
	ID         uuid.UUID
	Size       int
	Seed       int64 // Seed the maze was generated from
	StartedAt  time.Time
	FinishedAt time.Time // Zero until the goal is reached

	grid *maze.Grid
	nav  *nav.Navigator
}

// NewSession generates a size×size maze and places the player at (0,0) and
// the goal at the far corner. A seed of 0 means a random seed will be
// generated; the seed actually used is recorded on the session.
func NewSession(ctx context.Context, size int, seed int64) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	span.SetAttributes(
		attribute.Int("maze.size", size),
		attribute.Int64("maze.seed", seed),
	)

	grid, err := maze.New(ctx, size, rand.New(rand.NewSource(seed)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "maze generation failed")
		return nil, err
	}

	start := maze.Position{X: 0, Y: 0}
	goal := maze.Position{X: size - 1, Y: size - 1}

	s := &Session{
		ID:        uuid.New(),
		Size:      size,
		Seed:      seed,
		StartedAt: time.Now(),
		grid:      grid,
		nav:       nav.New(grid, start, goal),
	}
	if s.nav.CheckWin() {
		s.FinishedAt = s.StartedAt
	}

	span.SetAttributes(attribute.String("session.id", s.ID.String()))
	return s, nil
}

// Move attempts one step. It reports whether the player moved.
func (s *Session) Move(ctx context.Context, d maze.Direction) bool {
	_, moved := s.nav.Move(d)
	if moved && s.nav.Won() {
		s.FinishedAt = time.Now()

		tracer := telemetry.Tracer("game")
		_, span := tracer.Start(ctx, "session.won")
		span.SetAttributes(
			attribute.String("session.id", s.ID.String()),
			attribute.Int("maze.size", s.Size),
			attribute.Int("session.moves", s.nav.Moves()),
			attribute.Int64("session.duration_ms", s.Elapsed().Milliseconds()),
		)
		span.End()
	}
	return moved
}

// Grid returns the session's maze.
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// Player returns the player's position.
func (s *Session) Player() maze.Position {
	return s.nav.Player()
}

// Goal returns the goal position.
func (s *Session) Goal() maze.Position {
	return s.nav.Goal()
}

// State returns the navigator state.
func (s *Session) State() nav.State {
	return s.nav.State()
}

// Won reports whether the goal has been reached.
func (s *Session) Won() bool {
	return s.nav.Won()
}

// Moves returns the number of accepted moves.
func (s *Session) Moves() int {
	return s.nav.Moves()
}

// Elapsed returns the play time so far, or the total once won.
func (s *Session) Elapsed() time.Duration {
	if !s.FinishedAt.IsZero() {
		return s.FinishedAt.Sub(s.StartedAt)
	}
	return time.Since(s.StartedAt)
}
