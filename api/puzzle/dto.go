// Package puzzleapi provides structures and utilities for managing puzzle requests and responses.
package puzzleapi

import (
	"github.com/beka-birhanu/labyrinth-api/game"
	"github.com/beka-birhanu/labyrinth-api/maze"
)

// CreatePuzzleRequest represents a request to generate a new puzzle.
// Omitted fields fall back to the server defaults.
type CreatePuzzleRequest struct {
	Width           int  `json:"width"`
	Height          int  `json:"height"`
	Branches        *int `json:"branches"`
	BranchMaxLength *int `json:"branch_max_length"`
}

// MoveRequest represents a single step of the player.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// PositionResponse is a cell coordinate on the wire.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PuzzleResponse represents a snapshot of a puzzle session. Cells are a
// uniform binary grid: 0 is wall, 1 is path. Token is only set on creation.
type PuzzleResponse struct {
	ID        string           `json:"id"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Cells     [][]uint8        `json:"cells"`
	Player    PositionResponse `json:"player"`
	Goal      PositionResponse `json:"goal"`
	Moves     int              `json:"moves"`
	Completed bool             `json:"completed"`
	Token     string           `json:"token,omitempty"`
}

// MoveResponse represents the session after a move.
type MoveResponse struct {
	Player    PositionResponse `json:"player"`
	Moves     int              `json:"moves"`
	Completed bool             `json:"completed"`
}

// SolutionResponse carries the auto-solve path, ordered from the player's
// current cell to the goal inclusive. An empty path means no route exists.
type SolutionResponse struct {
	Path []PositionResponse `json:"path"`
}

func newPositionResponse(p maze.Position) PositionResponse {
	return PositionResponse{Row: p.Row, Col: p.Col}
}

func newPuzzleResponse(state game.State, token string) *PuzzleResponse {
	cells := make([][]uint8, state.Grid.Height)
	for row := range cells {
		cells[row] = make([]uint8, state.Grid.Width)
		for col := range cells[row] {
			if state.Grid.Cells[row][col] == maze.Path {
				cells[row][col] = 1
			}
		}
	}

	return &PuzzleResponse{
		ID:        state.ID.String(),
		Width:     state.Grid.Width,
		Height:    state.Grid.Height,
		Cells:     cells,
		Player:    newPositionResponse(state.Player),
		Goal:      newPositionResponse(state.Goal),
		Moves:     state.Moves,
		Completed: state.Completed,
		Token:     token,
	}
}

func newSolutionResponse(path []maze.Position) *SolutionResponse {
	positions := make([]PositionResponse, 0, len(path))
	for _, p := range path {
		positions = append(positions, newPositionResponse(p))
	}
	return &SolutionResponse{Path: positions}
}
