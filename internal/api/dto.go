package api

import (
	"github.com/samdwyer/mazewalk/internal/game"
	"github.com/samdwyer/mazewalk/internal/maze"
)

// CreateMazeRequest asks for a new maze. Seed 0 or absent picks a random seed.
type CreateMazeRequest struct {
	Size *int  `json:"size" binding:"required"`
	Seed int64 `json:"seed"`
}

// MoveRequest asks to move the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// PositionResponse is a cell coordinate.
type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeResponse describes a maze session. Walls holds one mask per cell,
// indexed [y][x], with bit 1<<d set when side d (up=0, right=1, down=2,
// left=3) is walled.
type MazeResponse struct {
	ID     string           `json:"id"`
	Size   int              `json:"size"`
	Seed   int64            `json:"seed"`
	Player PositionResponse `json:"player"`
	Goal   PositionResponse `json:"goal"`
	State  string           `json:"state"`
	Moves  int              `json:"moves"`
	Walls  [][]int          `json:"walls"`
	Layout string           `json:"layout"`
}

// MoveResponse reports the outcome of a move request.
type MoveResponse struct {
	Moved  bool             `json:"moved"`
	Player PositionResponse `json:"player"`
	State  string           `json:"state"`
	Moves  int              `json:"moves"`
}

func newPositionResponse(p maze.Position) PositionResponse {
	return PositionResponse{X: p.X, Y: p.Y}
}

func newMazeResponse(s *game.Session) *MazeResponse {
	grid := s.Grid()
	walls := make([][]int, grid.Size())
	for y := range walls {
		walls[y] = make([]int, grid.Size())
		for x := range walls[y] {
			walls[y][x] = int(grid.WallMask(maze.Position{X: x, Y: y}))
		}
	}

	return &MazeResponse{
		ID:     s.ID.String(),
		Size:   s.Size,
		Seed:   s.Seed,
		Player: newPositionResponse(s.Player()),
		Goal:   newPositionResponse(s.Goal()),
		State:  s.State().String(),
		Moves:  s.Moves(),
		Walls:  walls,
		Layout: grid.String(),
	}
}
