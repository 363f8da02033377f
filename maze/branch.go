package maze

import "math/rand"

// injectBranches adds up to branches straight dead-end spurs to a carved
// maze, each at most maxLength cells long. A spur stops before it would
// touch any existing passage other than the cell it grew from, so no cycle
// or shortcut can form and the single-route property of the base maze is
// preserved. Non-positive parameters skip branching entirely.
func (g *Grid) injectBranches(rng *rand.Rand, branches, maxLength int) {
	if branches <= 0 || maxLength <= 0 {
		return
	}

	for i := 0; i < branches; i++ {
		anchors := g.interiorPathCells()
		if len(anchors) == 0 {
			return
		}
		anchor := anchors[rng.Intn(len(anchors))]

		dir, ok := g.spurDirection(rng, anchor)
		if !ok {
			continue
		}

		length := rng.Intn(maxLength) + 1
		cur := anchor
		for step := 0; step < length; step++ {
			next := Position{Row: cur.Row + dir.Row, Col: cur.Col + dir.Col}
			if !g.interior(next) || g.Cells[next.Row][next.Col] != Wall || g.touchesOtherPath(next, cur) {
				break
			}
			g.Cells[next.Row][next.Col] = Path
			cur = next
		}
	}
}

// interiorPathCells lists every Path cell strictly inside the border ring.
func (g *Grid) interiorPathCells() []Position {
	var cells []Position
	for row := 1; row < g.Height-1; row++ {
		for col := 1; col < g.Width-1; col++ {
			if g.Cells[row][col] == Path {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}
	return cells
}

// spurDirection picks the first shuffled direction whose neighbor of anchor
// is still solid wall, so the spur breaks new ground instead of re-opening
// an existing passage. Anchors are interior cells, so every neighbor is in
// bounds.
func (g *Grid) spurDirection(rng *rand.Rand, anchor Position) (Position, bool) {
	for _, d := range shuffledDirections(rng) {
		n := Position{Row: anchor.Row + d.Row, Col: anchor.Col + d.Col}
		if g.Cells[n.Row][n.Col] == Wall {
			return d, true
		}
	}
	return Position{}, false
}

// touchesOtherPath reports whether any 4-neighbor of p, other than prev, is
// already a Path cell. A spur cell may only ever touch the cell it was
// carved from; anything else would create an alternate route or a loop.
func (g *Grid) touchesOtherPath(p, prev Position) bool {
	for _, d := range directionOrder {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if n == prev || !g.InBound(n.Row, n.Col) {
			continue
		}
		if g.Cells[n.Row][n.Col] == Path {
			return true
		}
	}
	return false
}
