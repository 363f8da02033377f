package maze

import "math/rand"

// carveFrame is one explicit-stack frame of the carver: the lattice cell it
// sits on and the shuffled direction candidates not yet tried from it.
type carveFrame struct {
	cell Position
	dirs [4]Position
	next int
}

// carve digs the base maze with a randomized depth-first backtracker over
// the odd-coordinate lattice, starting at (1,1). Each move jumps two cells
// and opens the wall halfway, so every passage removes exactly one wall
// between two lattice cells and the carved region forms a spanning tree:
// any two path cells are connected by exactly one route.
//
// The stack is explicit to keep recursion depth off the call stack on large
// grids; the visit order matches the recursive formulation.
func (g *Grid) carve(rng *rand.Rand) {
	visited := newMask(g.Height, g.Width)
	start := g.Start()
	g.Cells[start.Row][start.Col] = Path
	visited[start.Row][start.Col] = true

	stack := []carveFrame{{cell: start, dirs: shuffledDirections(rng)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1] // all candidates exhausted, backtrack
			continue
		}
		d := top.dirs[top.next]
		top.next++

		target := Position{Row: top.cell.Row + 2*d.Row, Col: top.cell.Col + 2*d.Col}
		if !g.interior(target) || visited[target.Row][target.Col] {
			continue
		}

		g.Cells[top.cell.Row+d.Row][top.cell.Col+d.Col] = Path
		g.Cells[target.Row][target.Col] = Path
		visited[target.Row][target.Col] = true
		stack = append(stack, carveFrame{cell: target, dirs: shuffledDirections(rng)})
	}

	// The 2-step lattice from (1,1) can miss the far corner on dimensions
	// that do not align with it; force both endpoints open.
	goal := g.Goal()
	g.Cells[start.Row][start.Col] = Path
	g.Cells[goal.Row][goal.Col] = Path
}

// shuffledDirections returns the four unit directions in Fisher-Yates
// shuffled order. The shuffle is what makes the maze irregular instead of a
// fixed snake pattern.
func shuffledDirections(rng *rand.Rand) [4]Position {
	dirs := directionOrder
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}
