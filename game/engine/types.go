package engine

import (
	"fmt"
	"strings"
)

const (
	// Size is the width and height of the board.
	Size = 4

	// CellCount is the number of cells on the board.
	CellCount = Size * Size

	// Blank is the sentinel value of the empty cell.
	Blank uint8 = 0

	// ShuffleMoves is the number of random slides applied by CreatePuzzle.
	ShuffleMoves = 1000

	// MaxBulkMoves caps a single bulk move request.
	MaxBulkMoves = 50
)

// Grid is the 4x4 board, indexed [row][col].
type Grid [Size][Size]uint8

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the four slides. It names the way the blank moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lower-case direction name
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Delta returns the row and column offset of one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseDirection maps "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// MoveHistoryEntry represents a single accepted move
type MoveHistoryEntry struct {
	Action     string   `json:"action"`
	Tile       uint8    `json:"tile"`
	BlankFrom  Position `json:"blank_from"`
	BlankTo    Position `json:"blank_to"`
	Timestamp  int64    `json:"timestamp"`
	MoveNumber int      `json:"move_number"`
}

// GameState is a snapshot of an engine, safe to hand to renderers.
type GameState struct {
	Grid        Grid               `json:"grid"`
	Blank       Position           `json:"blank"`
	Moves       int                `json:"moves"`
	Solved      bool               `json:"solved"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
}
