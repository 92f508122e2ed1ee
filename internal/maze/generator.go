package maze

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// RNG is a uniform source of integers in [0, n). *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// New creates an n×n grid and carves a maze into it.
func New(ctx context.Context, n int, rng RNG) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, g, rng), nil
}

// Generate carves a perfect maze into g with an iterative randomized
// depth-first backtracker starting at (0,0), and returns g.
//
// g must be freshly created: every cell walled and unvisited.
func Generate(ctx context.Context, g *Grid, rng RNG) *Grid {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	current := Position{X: 0, Y: 0}
	g.markVisited(current)
	stack := []Position{current}
	candidates := make([]Position, 0, len(Directions))

	for len(stack) > 0 {
		candidates = candidates[:0]
		for n := range g.Neighbors(current) {
			if !g.visited(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		stack = append(stack, current)
		if err := g.RemoveWallBetween(current, next); err != nil {
			panic(err)
		}
		current = next
		g.markVisited(current)
	}

	span.SetAttributes(
		attribute.Int("maze.size", g.size),
		attribute.Int("maze.passages", g.Passages()),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g
}
