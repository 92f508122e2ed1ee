package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samdwyer/mazewalk/internal/game"
	"github.com/samdwyer/mazewalk/internal/maze"
)

// MazeController exposes maze sessions.
type MazeController struct {
	store *SessionStore
}

// NewMazeController initializes a MazeController.
func NewMazeController(store *SessionStore) *MazeController {
	return &MazeController{store: store}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.DELETE("/:ID", mc.delete)
		mazes.POST("/:ID/moves", mc.move)
	}
}

// create generates a new maze session.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *request.Size > game.MaxSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size exceeds maximum of %d", game.MaxSize)})
		return
	}

	var response *MazeResponse
	err := mc.store.Create(ctx.Request.Context(), *request.Size, request.Seed, func(s *game.Session) {
		response = newMazeResponse(s)
	})
	switch {
	case errors.Is(err, maze.ErrInvalidSize):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrTooManySessions):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// get returns a maze session.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var response *MazeResponse
	err := mc.store.View(id, func(s *game.Session) {
		response = newMazeResponse(s)
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// move applies one player move. Blocked moves are not errors.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var response MoveResponse
	err = mc.store.Update(id, func(s *game.Session) {
		response = MoveResponse{
			Moved:  s.Move(ctx.Request.Context(), direction),
			Player: newPositionResponse(s.Player()),
			State:  s.State().String(),
			Moves:  s.Moves(),
		}
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// delete discards a maze session.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.store.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// sessionID parses the :ID path parameter, answering 400 when malformed.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}
