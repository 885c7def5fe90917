package console

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// Renderer writes a grid in the plain cell format, optionally wrapping each
// tile in ANSI colour. Tiles already on their goal cell are green, the rest
// yellow.
type Renderer struct {
	colored  bool
	placed   *color.Color
	misplace *color.Color
}

// NewRenderer creates a renderer. Colour is forced on when colored is set,
// regardless of whether the writer is a terminal.
func NewRenderer(colored bool) *Renderer {
	r := &Renderer{
		colored:  colored,
		placed:   color.New(color.FgGreen, color.Bold),
		misplace: color.New(color.FgYellow),
	}
	if colored {
		r.placed.EnableColor()
		r.misplace.EnableColor()
	}
	return r
}

// Render writes every row followed by an empty line
func (r *Renderer) Render(w io.Writer, g engine.Grid) error {
	if !r.colored {
		_, err := io.WriteString(w, g.String())
		return err
	}

	var b strings.Builder
	for row := range g {
		for col, v := range g[row] {
			b.WriteString(r.cell(v, engine.Position{Row: row, Col: col}))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) cell(v uint8, pos engine.Position) string {
	text := engine.FormatCell(v)
	if v == engine.Blank {
		return text
	}
	if engine.GoalPosition(v) == pos {
		return r.placed.Sprint(text)
	}
	return r.misplace.Sprint(text)
}
