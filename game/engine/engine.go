package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	GetGrid() Grid
	SetGrid(grid Grid) error
	Reset() *GameState
	IsSolved() bool
	GetMoveCount() int
	GetBlankPosition() Position

	// Movement operations
	Move(direction Direction) bool
	CanMove(direction Direction) bool
	GetPossibleMoves() []Direction

	// Configuration
	GetConfig() *GameConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry

	// Batch movement
	BulkMove(moves []Direction) []bool
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface. It owns the grid, the move
// counter and the random source; it is not safe for concurrent use.
type GameEngine struct {
	grid    Grid
	moves   int
	history []MoveHistoryEntry
	config  *GameConfig
	rng     *rand.Rand
}

// NewEngine creates a new game engine with a freshly shuffled grid.
// A nil rng is replaced by one seeded from the clock.
func NewEngine(config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	engine := &GameEngine{
		config:  config,
		rng:     rng,
		grid:    CreatePuzzle(rng),
		history: []MoveHistoryEntry{},
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with default configuration
func NewEngineWithDefaults() *GameEngine {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		// DefaultConfig always validates
		panic(err)
	}
	return engine
}

// GetState returns a snapshot of the current game state
func (e *GameEngine) GetState() *GameState {
	history := make([]MoveHistoryEntry, len(e.history))
	copy(history, e.history)

	return &GameState{
		Grid:        e.grid,
		Blank:       e.grid.FindBlank(),
		Moves:       e.moves,
		Solved:      e.grid.IsSolved(),
		ConfigName:  e.config.Name,
		MoveHistory: history,
	}
}

// GetGrid returns a copy of the grid
func (e *GameEngine) GetGrid() Grid {
	return e.grid
}

// SetGrid replaces the grid (used to start from a known layout).
// The move counter and history are cleared.
func (e *GameEngine) SetGrid(grid Grid) error {
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("cannot set grid: %w", err)
	}
	e.grid = grid
	e.moves = 0
	e.history = []MoveHistoryEntry{}
	return nil
}

// Reset deals a new shuffled puzzle and clears the counter and history
func (e *GameEngine) Reset() *GameState {
	e.grid = CreatePuzzle(e.rng)
	e.moves = 0
	e.history = []MoveHistoryEntry{}
	return e.GetState()
}

// IsSolved returns whether the grid is in the goal arrangement
func (e *GameEngine) IsSolved() bool {
	return e.grid.IsSolved()
}

// GetMoveCount returns the number of accepted moves
func (e *GameEngine) GetMoveCount() int {
	return e.moves
}

// GetBlankPosition returns the current blank position
func (e *GameEngine) GetBlankPosition() Position {
	return e.grid.FindBlank()
}

// Move slides a tile into the blank. Rejected moves change nothing and do not
// count.
func (e *GameEngine) Move(direction Direction) bool {
	from, to, ok := e.grid.target(direction)
	if !ok {
		return false
	}

	tile := e.grid[to.Row][to.Col]
	e.grid.ApplyMove(direction)
	e.moves++

	e.history = append(e.history, MoveHistoryEntry{
		Action:     direction.String(),
		Tile:       tile,
		BlankFrom:  from,
		BlankTo:    to,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.moves,
	})

	return true
}

// CanMove checks if the blank can move in the specified direction
func (e *GameEngine) CanMove(direction Direction) bool {
	return e.grid.CanApply(direction)
}

// GetPossibleMoves returns all legal directions from the current position
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns the accepted moves in order
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.history
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}

// BulkMove executes moves in order. It stops after the first rejected move
// or once the puzzle is solved, returning one result per attempted move.
func (e *GameEngine) BulkMove(moves []Direction) []bool {
	results := make([]bool, 0, len(moves))

	for _, direction := range moves {
		if e.IsSolved() {
			break
		}

		success := e.Move(direction)
		results = append(results, success)
		if !success {
			break
		}
	}

	return results
}
