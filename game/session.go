package game

import (
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrNilGrid          = errors.New("session requires a generated maze")
	ErrInvalidMove      = errors.New("invalid move request")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Session is one player's run through a maze. It tracks the player cell,
// the move count and completion, and answers auto-solve requests against
// the read-only grid. A mutex guards the mutable fields because HTTP
// handlers touch a session concurrently.
type Session struct {
	id           uuid.UUID
	grid         *maze.Grid
	player       maze.Position
	goal         maze.Position
	moves        int
	completed    bool
	createdAt    time.Time
	sync.RWMutex // Read-Write lock for synchronizing access.
}

// NewSession opens a session on a generated grid with the player at the
// maze start.
func NewSession(grid *maze.Grid) (*Session, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	return &Session{
		id:        uuid.New(),
		grid:      grid,
		player:    grid.Start(),
		goal:      grid.Goal(),
		createdAt: time.Now().UTC(),
	}, nil
}

// ID returns the session's unique ID.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Grid returns the session's read-only maze.
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// Move steps the player one cell in the named compass direction
// (North/South/East/West). The move is rejected when the direction is
// unknown or the target cell is not passable. Returns the player position
// after the move and whether the goal has been reached.
func (s *Session) Move(direction string) (maze.Position, bool, error) {
	delta, ok := maze.Directions[direction]
	if !ok {
		return maze.Position{}, false, ErrUnknownDirection
	}

	s.Lock()
	defer s.Unlock()

	target := maze.Position{Row: s.player.Row + delta.Row, Col: s.player.Col + delta.Col}
	if !s.grid.IsPassable(target.Row, target.Col) {
		return s.player, s.completed, ErrInvalidMove
	}

	s.player = target
	s.moves++
	if s.player == s.goal {
		s.completed = true
	}
	return s.player, s.completed, nil
}

// Solution returns the shortest route from the player's current cell to the
// goal, inclusive of both. The session is not advanced; stepping through the
// returned cells on a timer is the client's business.
func (s *Session) Solution() []maze.Position {
	s.RLock()
	defer s.RUnlock()
	return s.grid.Solve(s.player, s.goal)
}

// State is a point-in-time snapshot of a session.
type State struct {
	ID        uuid.UUID
	Grid      *maze.Grid
	Player    maze.Position
	Goal      maze.Position
	Moves     int
	Completed bool
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() State {
	s.RLock()
	defer s.RUnlock()
	return State{
		ID:        s.id,
		Grid:      s.grid,
		Player:    s.player,
		Goal:      s.goal,
		Moves:     s.moves,
		Completed: s.completed,
	}
}
