// Package puzzleapi handles puzzle creation, navigation and auto-solving.
package puzzleapi

import (
	"net/http"
	"time"

	"github.com/beka-birhanu/labyrinth-api/api/identity"
	"github.com/beka-birhanu/labyrinth-api/game"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	puzzleIDClaim = "puzzle_id"
	tokenTTL      = 24 * time.Hour
)

// Defaults fill in generation parameters omitted from a create request.
type Defaults struct {
	Width           int
	Height          int
	Branches        int
	BranchMaxLength int
}

// PuzzleController manages puzzle operations.
type PuzzleController struct {
	puzzleManager i.PuzzleManager
	tokenizer     i.Tokenizer
	defaults      Defaults
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(pm i.PuzzleManager, t i.Tokenizer, d Defaults) (*PuzzleController, error) {
	return &PuzzleController{
		puzzleManager: pm,
		tokenizer:     t,
		defaults:      d,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("/", pc.create)
	}
}

// RegisterProtected registers protected routes.
func (pc *PuzzleController) RegisterProtected(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.GET("/:ID", pc.state)
		puzzles.POST("/:ID/moves", pc.move)
		puzzles.GET("/:ID/solution", pc.solution)
		puzzles.DELETE("/:ID", pc.remove)
	}
}

// create handles puzzle creation requests and issues the ownership token
// scoping all further calls on the new puzzle.
func (pc *PuzzleController) create(ctx *gin.Context) {
	var request CreatePuzzleRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Width == 0 {
		request.Width = pc.defaults.Width
	}
	if request.Height == 0 {
		request.Height = pc.defaults.Height
	}
	branches := pc.defaults.Branches
	if request.Branches != nil {
		branches = *request.Branches
	}
	branchMaxLength := pc.defaults.BranchMaxLength
	if request.BranchMaxLength != nil {
		branchMaxLength = *request.BranchMaxLength
	}

	session, err := pc.puzzleManager.NewPuzzle(request.Width, request.Height, branches, branchMaxLength)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := pc.tokenizer.Generate(map[string]interface{}{
		puzzleIDClaim: session.ID().String(),
	}, tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing puzzle token"})
		return
	}

	ctx.JSON(http.StatusCreated, newPuzzleResponse(session.Snapshot(), token))
}

// state returns a snapshot of the puzzle.
func (pc *PuzzleController) state(ctx *gin.Context) {
	session, ok := pc.authorizedSession(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newPuzzleResponse(session.Snapshot(), ""))
}

// move steps the player one cell in the requested direction.
func (pc *PuzzleController) move(ctx *gin.Context) {
	session, ok := pc.authorizedSession(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, completed, err := session.Move(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := session.Snapshot()
	ctx.JSON(http.StatusOK, &MoveResponse{
		Player:    newPositionResponse(position),
		Moves:     state.Moves,
		Completed: completed,
	})
}

// solution returns the shortest route from the player's current cell to the
// goal for the client to animate.
func (pc *PuzzleController) solution(ctx *gin.Context) {
	session, ok := pc.authorizedSession(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newSolutionResponse(session.Solution()))
}

// remove abandons the puzzle.
func (pc *PuzzleController) remove(ctx *gin.Context) {
	session, ok := pc.authorizedSession(ctx)
	if !ok {
		return
	}
	if err := pc.puzzleManager.EndPuzzle(session.ID()); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Puzzle"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// authorizedSession resolves the :ID path param to a session and checks the
// bearer token's puzzle claim against it.
func (pc *PuzzleController) authorizedSession(ctx *gin.Context) (*game.Session, bool) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return nil, false
	}

	claims, ok := ctx.Get(identity.ContextSessionClaims)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}
	claimsMap, ok := claims.(map[string]interface{})
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}
	claimedID, _ := claimsMap[puzzleIDClaim].(string)
	if claimedID != ID.String() {
		ctx.Status(http.StatusForbidden)
		return nil, false
	}

	session, err := pc.puzzleManager.Puzzle(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Puzzle"})
		return nil, false
	}
	return session, true
}
