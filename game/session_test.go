package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) *maze.Grid {
	t.Helper()
	grid, err := maze.Generate(maze.Config{
		Width:           9,
		Height:          9,
		Branches:        3,
		BranchMaxLength: 2,
		Rand:            rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)
	return grid
}

// directionBetween names the compass direction of a single step between two
// adjacent cells.
func directionBetween(t *testing.T, from, to maze.Position) string {
	t.Helper()
	for name, delta := range maze.Directions {
		if from.Row+delta.Row == to.Row && from.Col+delta.Col == to.Col {
			return name
		}
	}
	t.Fatalf("cells %v and %v are not adjacent", from, to)
	return ""
}

func TestSession(t *testing.T) {
	t.Run("requires a grid", func(t *testing.T) {
		session, err := NewSession(nil)
		assert.ErrorIs(t, err, ErrNilGrid)
		assert.Nil(t, session)
	})

	t.Run("starts at the maze entry", func(t *testing.T) {
		grid := testGrid(t)
		session, err := NewSession(grid)
		require.NoError(t, err)

		state := session.Snapshot()
		assert.Equal(t, grid.Start(), state.Player)
		assert.Equal(t, grid.Goal(), state.Goal)
		assert.Zero(t, state.Moves)
		assert.False(t, state.Completed)
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		session, err := NewSession(testGrid(t))
		require.NoError(t, err)

		_, _, err = session.Move("Up")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("rejects moves into walls", func(t *testing.T) {
		session, err := NewSession(testGrid(t))
		require.NoError(t, err)

		// North of the start cell is always border wall.
		position, completed, err := session.Move("North")
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, session.Grid().Start(), position)
		assert.False(t, completed)
		assert.Zero(t, session.Snapshot().Moves)
	})

	t.Run("walks the solution to completion", func(t *testing.T) {
		session, err := NewSession(testGrid(t))
		require.NoError(t, err)

		path := session.Solution()
		require.GreaterOrEqual(t, len(path), 2)

		var completed bool
		for i := 1; i < len(path); i++ {
			var position maze.Position
			position, completed, err = session.Move(directionBetween(t, path[i-1], path[i]))
			require.NoError(t, err)
			assert.Equal(t, path[i], position)
		}

		assert.True(t, completed)
		state := session.Snapshot()
		assert.True(t, state.Completed)
		assert.Equal(t, state.Goal, state.Player)
		assert.Equal(t, len(path)-1, state.Moves)
	})

	t.Run("solution shrinks as the player advances", func(t *testing.T) {
		session, err := NewSession(testGrid(t))
		require.NoError(t, err)

		before := session.Solution()
		require.GreaterOrEqual(t, len(before), 2)

		_, _, err = session.Move(directionBetween(t, before[0], before[1]))
		require.NoError(t, err)

		after := session.Solution()
		assert.Len(t, after, len(before)-1)
		assert.Equal(t, before[1], after[0])
	})
}
