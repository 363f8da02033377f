package service

import (
	"errors"
	"log"
	"sync"

	"github.com/beka-birhanu/labyrinth-api/game"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
)

// ErrPuzzleNotFound is returned when no session exists for a given ID.
var ErrPuzzleNotFound = errors.New("no puzzle with that ID")

// PuzzleManager keeps the active puzzle sessions in memory, keyed by
// session ID. Sessions live for the lifetime of the process; mazes are
// never persisted.
type PuzzleManager struct {
	sessions    map[uuid.UUID]*game.Session
	mazeFactory func(maze.Config) (*maze.Grid, error)
	logger      *log.Logger
	sync.RWMutex
}

// Config holds the dependencies of a PuzzleManager.
type Config struct {
	MazeFactory func(maze.Config) (*maze.Grid, error)
	Logger      *log.Logger
}

// NewPuzzleManager creates a PuzzleManager with the given dependencies.
func NewPuzzleManager(c *Config) (*PuzzleManager, error) {
	if c.MazeFactory == nil || c.Logger == nil {
		return nil, errors.New("puzzle manager requires a maze factory and a logger")
	}
	return &PuzzleManager{
		sessions:    make(map[uuid.UUID]*game.Session),
		mazeFactory: c.MazeFactory,
		logger:      c.Logger,
	}, nil
}

// NewPuzzle generates a maze with the given parameters and opens a session
// on it.
func (pm *PuzzleManager) NewPuzzle(width, height, branches, branchMaxLength int) (*game.Session, error) {
	grid, err := pm.mazeFactory(maze.Config{
		Width:           width,
		Height:          height,
		Branches:        branches,
		BranchMaxLength: branchMaxLength,
	})
	if err != nil {
		pm.logger.Printf("[ERROR] creating maze for a new puzzle: %s", err)
		return nil, err
	}

	session, err := game.NewSession(grid)
	if err != nil {
		pm.logger.Printf("[ERROR] opening puzzle session: %s", err)
		return nil, err
	}

	pm.Lock()
	pm.sessions[session.ID()] = session
	pm.Unlock()

	pm.logger.Printf("[INFO] started puzzle %s (%dx%d, %d branches)", session.ID(), width, height, branches)
	return session, nil
}

// Puzzle returns the session with the given ID.
func (pm *PuzzleManager) Puzzle(id uuid.UUID) (*game.Session, error) {
	pm.RLock()
	defer pm.RUnlock()
	session, ok := pm.sessions[id]
	if !ok {
		return nil, ErrPuzzleNotFound
	}
	return session, nil
}

// EndPuzzle removes the session with the given ID.
func (pm *PuzzleManager) EndPuzzle(id uuid.UUID) error {
	pm.Lock()
	defer pm.Unlock()
	if _, ok := pm.sessions[id]; !ok {
		return ErrPuzzleNotFound
	}
	delete(pm.sessions, id)
	pm.logger.Printf("[INFO] ended puzzle %s", id)
	return nil
}
