package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGrid is returned when a layout is not a permutation of 0..15
var ErrInvalidGrid = errors.New("invalid grid")

// Validate checks the board invariant: every value 0..15 appears exactly once.
func (g Grid) Validate() error {
	var seen [CellCount]bool
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			v := g[row][col]
			if int(v) >= CellCount {
				return fmt.Errorf("%w: value %d at (%d,%d) is out of range 0-%d", ErrInvalidGrid, v, row, col, CellCount-1)
			}
			if seen[v] {
				return fmt.Errorf("%w: value %d appears more than once", ErrInvalidGrid, v)
			}
			seen[v] = true
		}
	}
	return nil
}

// ParseGrid reads sixteen values in row-major order separated by commas,
// semicolons, pipes or whitespace.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', ';', '|', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	if len(fields) != CellCount {
		return g, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidGrid, CellCount, len(fields))
	}

	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return g, fmt.Errorf("%w: value %q at index %d is not a tile number", ErrInvalidGrid, field, i)
		}
		g[i/Size][i%Size] = uint8(v)
	}

	if err := g.Validate(); err != nil {
		return g, err
	}
	return g, nil
}

// Values returns the cells in row-major order
func (g Grid) Values() []uint8 {
	values := make([]uint8, 0, CellCount)
	for _, row := range g {
		values = append(values, row[:]...)
	}
	return values
}

// CountInversions counts pairs of tiles that appear in the wrong order when
// the grid is read row by row, ignoring the blank.
func CountInversions(g Grid) int {
	values := g.Values()
	count := 0
	for i := 0; i < len(values); i++ {
		if values[i] == Blank {
			continue
		}
		for j := i + 1; j < len(values); j++ {
			if values[j] != Blank && values[j] < values[i] {
				count++
			}
		}
	}
	return count
}

// IsSolvable reports whether g can reach the solved arrangement by legal
// slides. On an even-width board that holds when the inversion count and the
// blank's row counted from the bottom (starting at 1) have opposite parity.
func IsSolvable(g Grid) bool {
	inversions := CountInversions(g)
	blankFromBottom := Size - g.FindBlank().Row
	if blankFromBottom%2 == 0 {
		return inversions%2 == 1
	}
	return inversions%2 == 0
}

// GoalPosition returns where tile v sits in the solved arrangement
func GoalPosition(v uint8) Position {
	if v == Blank {
		return Position{Row: Size - 1, Col: Size - 1}
	}
	idx := int(v) - 1
	return Position{Row: idx / Size, Col: idx % Size}
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// TotalManhattan sums the distance of every tile from its goal cell
func TotalManhattan(g Grid) int {
	total := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if v := g[row][col]; v != Blank {
				total += ManhattanDistance(Position{Row: row, Col: col}, GoalPosition(v))
			}
		}
	}
	return total
}

// MisplacedTiles counts numbered tiles that are not on their goal cell
func MisplacedTiles(g Grid) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if v := g[row][col]; v != Blank && GoalPosition(v) != (Position{Row: row, Col: col}) {
				count++
			}
		}
	}
	return count
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
