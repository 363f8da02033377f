package maze

// CellState is the binary state of a single grid cell.
type CellState uint8

const (
	// Wall marks a solid cell. All border cells stay walls after generation.
	Wall CellState = iota
	// Path marks a passable cell carved during generation.
	Path
)

// Position identifies a cell by its (row, col) coordinates. The grid is
// row-major and every component (carver, branch injector, solver) shares
// this convention.
type Position struct {
	Row int
	Col int
}

// Directions maps compass names to single-cell movement offsets.
var Directions = map[string]Position{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

// directionOrder fixes neighbor enumeration as up, down, left, right so that
// BFS tie-breaks are stable across calls.
var directionOrder = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}
