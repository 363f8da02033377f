package service

import (
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *PuzzleManager {
	t.Helper()
	pm, err := NewPuzzleManager(&Config{
		MazeFactory: maze.Generate,
		Logger:      log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return pm
}

func TestNewPuzzleManager(t *testing.T) {
	t.Run("requires a maze factory", func(t *testing.T) {
		pm, err := NewPuzzleManager(&Config{Logger: log.New(io.Discard, "", 0)})
		assert.Error(t, err)
		assert.Nil(t, pm)
	})

	t.Run("requires a logger", func(t *testing.T) {
		pm, err := NewPuzzleManager(&Config{MazeFactory: maze.Generate})
		assert.Error(t, err)
		assert.Nil(t, pm)
	})
}

func TestPuzzleLifecycle(t *testing.T) {
	pm := testManager(t)

	session, err := pm.NewPuzzle(9, 9, 3, 2)
	require.NoError(t, err)
	require.NotNil(t, session)

	t.Run("retrieves an open puzzle", func(t *testing.T) {
		got, err := pm.Puzzle(session.ID())
		assert.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("unknown IDs are not found", func(t *testing.T) {
		_, err := pm.Puzzle(uuid.New())
		assert.ErrorIs(t, err, ErrPuzzleNotFound)
	})

	t.Run("ended puzzles are gone", func(t *testing.T) {
		assert.NoError(t, pm.EndPuzzle(session.ID()))

		_, err := pm.Puzzle(session.ID())
		assert.ErrorIs(t, err, ErrPuzzleNotFound)
		assert.ErrorIs(t, pm.EndPuzzle(session.ID()), ErrPuzzleNotFound)
	})
}

func TestNewPuzzleInvalidDimensions(t *testing.T) {
	pm := testManager(t)

	session, err := pm.NewPuzzle(10, 9, 0, 0)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Nil(t, session)
}
