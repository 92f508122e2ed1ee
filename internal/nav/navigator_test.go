package nav

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazewalk/internal/maze"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePlaying, "playing"},
		{StateWon, "won"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestAttemptMoveBlockedByWalls(t *testing.T) {
	g, err := maze.NewGrid(2)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			p := maze.Position{X: x, Y: y}
			for _, d := range maze.Directions {
				// Repeated attempts are equally rejected.
				for i := 0; i < 3; i++ {
					assert.Equal(t, p, AttemptMove(g, p, d), "move %v from %v", d, p)
				}
			}
		}
	}
}

func TestAttemptMoveThroughPassage(t *testing.T) {
	g, err := maze.NewGrid(2)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWallBetween(maze.Position{X: 0, Y: 0}, maze.Position{X: 1, Y: 0}))
	require.NoError(t, g.RemoveWallBetween(maze.Position{X: 1, Y: 0}, maze.Position{X: 1, Y: 1}))

	tests := []struct {
		name string
		from maze.Position
		dir  maze.Direction
		want maze.Position
	}{
		{"right", maze.Position{X: 0, Y: 0}, maze.Right, maze.Position{X: 1, Y: 0}},
		{"left back", maze.Position{X: 1, Y: 0}, maze.Left, maze.Position{X: 0, Y: 0}},
		{"down", maze.Position{X: 1, Y: 0}, maze.Down, maze.Position{X: 1, Y: 1}},
		{"up back", maze.Position{X: 1, Y: 1}, maze.Up, maze.Position{X: 1, Y: 0}},
		{"walled down", maze.Position{X: 0, Y: 0}, maze.Down, maze.Position{X: 0, Y: 0}},
		{"boundary", maze.Position{X: 1, Y: 0}, maze.Right, maze.Position{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttemptMove(g, tt.from, tt.dir))
		})
	}
}

func TestAttemptMovePassagesAreTwoWay(t *testing.T) {
	const n = 10
	g, err := maze.New(context.Background(), n, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := maze.Position{X: x, Y: y}
			for _, d := range maze.Directions {
				q := AttemptMove(g, p, d)
				require.True(t, g.InBounds(q), "move %v from %v left the grid", d, p)
				if q != p {
					assert.Equal(t, p, AttemptMove(g, q, d.Opposite()))
				}
			}
		}
	}
}

func TestCheckWinOnlyAtGoal(t *testing.T) {
	const n = 5
	g, err := maze.New(context.Background(), n, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	goal := maze.Position{X: n - 1, Y: n - 1}

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := maze.Position{X: x, Y: y}
			assert.Equal(t, p == goal, CheckWin(p, goal), "position %v", p)
		}
	}
}

func TestNavigatorMove(t *testing.T) {
	g, err := maze.NewGrid(2)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWallBetween(maze.Position{X: 0, Y: 0}, maze.Position{X: 1, Y: 0}))
	require.NoError(t, g.RemoveWallBetween(maze.Position{X: 1, Y: 0}, maze.Position{X: 1, Y: 1}))

	n := New(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 1, Y: 1})
	assert.Equal(t, StatePlaying, n.State())
	assert.False(t, n.CheckWin())

	pos, moved := n.Move(maze.Down)
	assert.False(t, moved)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, pos)
	assert.Equal(t, 0, n.Moves())

	pos, moved = n.Move(maze.Right)
	assert.True(t, moved)
	assert.Equal(t, maze.Position{X: 1, Y: 0}, pos)
	assert.False(t, n.Won())

	pos, moved = n.Move(maze.Down)
	assert.True(t, moved)
	assert.Equal(t, maze.Position{X: 1, Y: 1}, pos)
	assert.True(t, n.Won())
	assert.Equal(t, StateWon, n.State())
	assert.Equal(t, 2, n.Moves())

	// Won is terminal even through an open passage.
	pos, moved = n.Move(maze.Up)
	assert.False(t, moved)
	assert.Equal(t, maze.Position{X: 1, Y: 1}, pos)
	assert.Equal(t, maze.Position{X: 1, Y: 1}, n.Player())
	assert.Equal(t, 2, n.Moves())
}

func TestNavigatorSingleCell(t *testing.T) {
	g, err := maze.New(context.Background(), 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	origin := maze.Position{X: 0, Y: 0}
	n := New(g, origin, origin)
	assert.Equal(t, StatePlaying, n.State())
	assert.True(t, n.CheckWin())
	assert.True(t, n.Won())
	assert.Equal(t, origin, n.Goal())
}

// solve returns the directions of the unique path from start to goal.
func solve(g *maze.Grid, start, goal maze.Position) []maze.Direction {
	type step struct {
		from maze.Position
		dir  maze.Direction
	}
	prev := map[maze.Position]step{}
	seen := map[maze.Position]bool{start: true}
	queue := []maze.Position{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == goal {
			break
		}
		for _, d := range maze.Directions {
			q := AttemptMove(g, p, d)
			if q == p || seen[q] {
				continue
			}
			seen[q] = true
			prev[q] = step{from: p, dir: d}
			queue = append(queue, q)
		}
	}

	var path []maze.Direction
	for p := goal; p != start; p = prev[p].from {
		path = append([]maze.Direction{prev[p].dir}, path...)
	}
	return path
}

func TestNavigatorReachesGoalInGeneratedMaze(t *testing.T) {
	const n = 8
	g, err := maze.New(context.Background(), n, rand.New(rand.NewSource(2024)))
	require.NoError(t, err)

	start := maze.Position{X: 0, Y: 0}
	goal := maze.Position{X: n - 1, Y: n - 1}
	nv := New(g, start, goal)

	path := solve(g, start, goal)
	require.NotEmpty(t, path)

	for i, d := range path {
		require.False(t, nv.Won(), "won early at step %d", i)
		_, moved := nv.Move(d)
		require.True(t, moved, "step %d (%v) blocked", i, d)
	}

	assert.True(t, nv.Won())
	assert.Equal(t, goal, nv.Player())
	assert.Equal(t, len(path), nv.Moves())
}
