/*
Package maze provides generation and solving of binary-grid mazes.

A maze is a rectangular grid of Wall and Path cells indexed as (row, col).
Generation carves a spanning tree over the odd-coordinate sub-lattice with a
randomized depth-first backtracker, then optionally injects straight
dead-end spurs that never reconnect with existing passages, so exactly one
route links the start and goal cells. Solving is unweighted breadth-first
search restricted to Path cells.

Utility methods cover bounds and passability checks and ASCII visualization
of the grid.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const (
	minMazeDimension = 3
	maxMazeDimension = 201
)

// ErrInvalidDimensions is returned for maze dimensions that cannot produce
// a well-formed grid: even, too small, or over the supported cap.
var ErrInvalidDimensions = errors.New("maze dimensions must be odd, at least 3 and at most 201")

// Grid is a rectangular maze of binary cells. It is mutated only during
// Generate; afterwards it is read-only data safe for concurrent lookups.
type Grid struct {
	Width  int           // Width of the maze (number of columns)
	Height int           // Height of the maze (number of rows)
	Cells  [][]CellState // Cells[row][col]
}

// Config bundles the generation parameters.
type Config struct {
	Width           int        // odd, in [3, 201]
	Height          int        // odd, in [3, 201]
	Branches        int        // dead-end spurs to inject; <= 0 skips branching
	BranchMaxLength int        // max spur length in cells; <= 0 skips branching
	Rand            *rand.Rand // optional source; time-seeded when nil
}

// Generate builds a new maze: a spanning-tree carve from (1,1) followed by
// branch injection. The zero values of Branches and BranchMaxLength yield a
// perfect maze.
func Generate(cfg Config) (*Grid, error) {
	if cfg.Width%2 == 0 || cfg.Height%2 == 0 ||
		min(cfg.Width, cfg.Height) < minMazeDimension ||
		max(cfg.Width, cfg.Height) > maxMazeDimension {
		return nil, ErrInvalidDimensions
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]CellState, cfg.Height)
	for i := range cells {
		cells[i] = make([]CellState, cfg.Width)
	}

	g := &Grid{
		Width:  cfg.Width,
		Height: cfg.Height,
		Cells:  cells,
	}
	g.carve(rng)
	g.injectBranches(rng, cfg.Branches, cfg.BranchMaxLength)
	return g, nil
}

// InBound reports whether (row, col) lies inside the grid extents.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// IsPassable reports whether (row, col) is an in-bounds Path cell.
// Out-of-range coordinates are simply not passable.
func (g *Grid) IsPassable(row, col int) bool {
	return g.InBound(row, col) && g.Cells[row][col] == Path
}

// interior reports whether p lies strictly inside the border ring.
func (g *Grid) interior(p Position) bool {
	return p.Row > 0 && p.Row < g.Height-1 && p.Col > 0 && p.Col < g.Width-1
}

// Start returns the fixed carve entry cell.
func (g *Grid) Start() Position {
	return Position{Row: 1, Col: 1}
}

// Goal returns the cell opposite the start.
func (g *Grid) Goal() Position {
	return Position{Row: g.Height - 2, Col: g.Width - 2}
}

// newMask allocates a fresh visited mask shaped like the grid. Each carve or
// solve call owns its own mask.
func newMask(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
