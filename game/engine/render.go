package engine

import (
	"fmt"
	"strings"
)

// FormatCell renders one cell: numbers right-aligned in two columns followed
// by a space, the blank as three spaces.
func FormatCell(v uint8) string {
	if v == Blank {
		return "   "
	}
	return fmt.Sprintf("%2d ", v)
}

// String renders the grid one row per line followed by an empty line
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, cell := range row {
			b.WriteString(FormatCell(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
