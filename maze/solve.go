package maze

import "slices"

// Solve returns one shortest route between start and end over the
// 4-connected graph of Path cells, inclusive of both endpoints, or nil when
// no route exists. Endpoints that are out of bounds or not Path cells yield
// nil rather than an error; start == end yields the single-element path.
//
// Neighbor expansion follows the fixed up, down, left, right order, so ties
// between equal-length routes resolve identically on every call.
func (g *Grid) Solve(start, end Position) []Position {
	if !g.IsPassable(start.Row, start.Col) || !g.IsPassable(end.Row, end.Col) {
		return nil
	}
	if start == end {
		return []Position{start}
	}

	visited := newMask(g.Height, g.Width)
	prev := make([][]Position, g.Height)
	for i := range prev {
		prev[i] = make([]Position, g.Width)
	}

	// Cells are marked visited at discovery, not at dequeue, so no cell is
	// enqueued twice and predecessor links stay consistent.
	frontier := []Position{start}
	visited[start.Row][start.Col] = true
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == end {
			break
		}
		for _, d := range directionOrder {
			n := Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !g.IsPassable(n.Row, n.Col) || visited[n.Row][n.Col] {
				continue
			}
			visited[n.Row][n.Col] = true
			prev[n.Row][n.Col] = cur
			frontier = append(frontier, n)
		}
	}

	if !visited[end.Row][end.Col] {
		return nil
	}

	path := []Position{end}
	for p := prev[end.Row][end.Col]; p != start; p = prev[p.Row][p.Col] {
		path = append(path, p)
	}
	path = append(path, start)
	slices.Reverse(path)
	return path
}
