package i

import (
	"github.com/beka-birhanu/labyrinth-api/game"
	"github.com/google/uuid"
)

// PuzzleManager manages the active puzzle sessions.
type PuzzleManager interface {
	// NewPuzzle generates a maze with the given parameters and opens a
	// session on it. Invalid dimensions surface the maze package's error.
	NewPuzzle(width, height, branches, branchMaxLength int) (*game.Session, error)

	// Puzzle returns the session with the given ID.
	// Returns an error if no such session exists.
	Puzzle(id uuid.UUID) (*game.Session, error)

	// EndPuzzle removes the session with the given ID.
	// Returns an error if no such session exists.
	EndPuzzle(id uuid.UUID) error
}
