package engine

import (
	"fmt"
	"math/rand"
)

// NewSolvedGrid returns the goal arrangement: 1..15 in row-major order with
// the blank in the last cell.
func NewSolvedGrid() Grid {
	var g Grid
	num := uint8(1)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			g[row][col] = num
			num++
		}
	}
	g[Size-1][Size-1] = Blank
	return g
}

// CreatePuzzle returns a solved grid scrambled by ShuffleMoves random slides
func CreatePuzzle(rng *rand.Rand) Grid {
	g := NewSolvedGrid()
	g.Shuffle(rng, ShuffleMoves)
	return g
}

// Shuffle applies n directions drawn uniformly at random. Directions that
// would push the blank off the board are skipped, so the grid only ever
// visits arrangements reachable from where it started.
func (g *Grid) Shuffle(rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		g.ApplyMove(Directions[rng.Intn(len(Directions))])
	}
}

// FindBlank returns the position of the zero cell.
// A grid without a blank violates the board invariant and panics.
func (g Grid) FindBlank() Position {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g[row][col] == Blank {
				return Position{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("engine: grid has no blank cell: %v", [Size][Size]uint8(g)))
}

// InBounds reports whether p lies on the board
func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// target returns the cell the blank would move to, and whether it is on the board
func (g Grid) target(d Direction) (Position, Position, bool) {
	blank := g.FindBlank()
	dr, dc := d.Delta()
	if dr == 0 && dc == 0 {
		return blank, blank, false
	}
	to := Position{Row: blank.Row + dr, Col: blank.Col + dc}
	return blank, to, InBounds(to)
}

// CanApply reports whether d is a legal move from the current blank position
func (g Grid) CanApply(d Direction) bool {
	_, _, ok := g.target(d)
	return ok
}

// ApplyMove slides the tile next to the blank in direction d into the blank.
// It returns false and leaves the grid unchanged when the target cell is off
// the board.
func (g *Grid) ApplyMove(d Direction) bool {
	blank, to, ok := g.target(d)
	if !ok {
		return false
	}

	g[blank.Row][blank.Col] = g[to.Row][to.Col]
	g[to.Row][to.Col] = Blank
	return true
}

// IsSolved reports whether the first fifteen cells read 1..15 in row-major
// order. The last cell is not compared: with the other fifteen in place it
// can only hold the blank.
func (g Grid) IsSolved() bool {
	num := uint8(1)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if num == CellCount {
				return true
			}
			if g[row][col] != num {
				return false
			}
			num++
		}
	}
	return true
}
