package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from '#'/' ' rows for hand-crafted cases.
func gridFromRows(rows []string) *Grid {
	height := len(rows)
	width := len(rows[0])
	cells := make([][]CellState, height)
	for r, row := range rows {
		cells[r] = make([]CellState, width)
		for c, ch := range row {
			if ch == ' ' {
				cells[r][c] = Path
			}
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

func TestSolve(t *testing.T) {
	t.Run("follows a single corridor inclusively", func(t *testing.T) {
		g := gridFromRows([]string{
			"#######",
			"#   ###",
			"### ###",
			"###   #",
			"#######",
		})

		path := g.Solve(Position{Row: 1, Col: 1}, Position{Row: 3, Col: 5})
		assert.Equal(t, []Position{
			{Row: 1, Col: 1},
			{Row: 1, Col: 2},
			{Row: 1, Col: 3},
			{Row: 2, Col: 3},
			{Row: 3, Col: 3},
			{Row: 3, Col: 4},
			{Row: 3, Col: 5},
		}, path)
	})

	t.Run("picks the shorter of two routes", func(t *testing.T) {
		g := gridFromRows([]string{
			"#######",
			"# ### #",
			"# ### #",
			"#     #",
			"#######",
		})

		path := g.Solve(Position{Row: 1, Col: 1}, Position{Row: 3, Col: 3})
		require.NotEmpty(t, path)
		assert.Len(t, path, 5)
	})

	t.Run("breaks ties in up down left right order", func(t *testing.T) {
		g := gridFromRows([]string{
			"#####",
			"#   #",
			"#   #",
			"#   #",
			"#####",
		})

		// In an open room several shortest routes exist; the fixed neighbor
		// order makes the down-then-right one the stable winner.
		path := g.Solve(Position{Row: 1, Col: 1}, Position{Row: 3, Col: 3})
		assert.Equal(t, []Position{
			{Row: 1, Col: 1},
			{Row: 2, Col: 1},
			{Row: 3, Col: 1},
			{Row: 3, Col: 2},
			{Row: 3, Col: 3},
		}, path)
	})

	t.Run("start equals end yields a single-cell path", func(t *testing.T) {
		g := gridFromRows([]string{
			"###",
			"# #",
			"###",
		})

		path := g.Solve(Position{Row: 1, Col: 1}, Position{Row: 1, Col: 1})
		assert.Equal(t, []Position{{Row: 1, Col: 1}}, path)
	})

	t.Run("returns empty for an unreachable island", func(t *testing.T) {
		g := gridFromRows([]string{
			"#######",
			"#  ####",
			"####  #",
			"#######",
		})

		assert.Empty(t, g.Solve(Position{Row: 1, Col: 1}, Position{Row: 2, Col: 4}))
	})

	t.Run("returns empty when an endpoint is not passable", func(t *testing.T) {
		g := gridFromRows([]string{
			"#####",
			"#   #",
			"#####",
		})

		assert.Empty(t, g.Solve(Position{Row: 0, Col: 0}, Position{Row: 1, Col: 3}))
		assert.Empty(t, g.Solve(Position{Row: 1, Col: 1}, Position{Row: 0, Col: 2}))
		assert.Empty(t, g.Solve(Position{Row: 1, Col: 1}, Position{Row: 9, Col: 9}))
		assert.Empty(t, g.Solve(Position{Row: -1, Col: 0}, Position{Row: 1, Col: 3}))
	})

	t.Run("round trip on a generated maze", func(t *testing.T) {
		g := mustGenerate(t, Config{
			Width:           21,
			Height:          21,
			Branches:        10,
			BranchMaxLength: 4,
			Rand:            rand.New(rand.NewSource(13)),
		})

		path := g.Solve(g.Start(), g.Goal())
		require.NotEmpty(t, path)
		assert.Equal(t, g.Start(), path[0])
		assert.Equal(t, g.Goal(), path[len(path)-1])

		for i, p := range path {
			assert.True(t, g.IsPassable(p.Row, p.Col), "path cell %v should be passable", p)
			if i == 0 {
				continue
			}
			prev := path[i-1]
			stepSize := abs(p.Row-prev.Row) + abs(p.Col-prev.Col)
			assert.Equal(t, 1, stepSize, "cells %v and %v should be one step apart", prev, p)
		}
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
