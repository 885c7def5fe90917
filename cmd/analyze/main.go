// Command analyze prints quick, human-readable facts about a 15-puzzle
// layout: blank position, inversion count, solvability by inversion parity,
// whether it is already solved, misplaced tiles and the Manhattan sum.
//
// The layout is 16 numbers in row-major order with 0 for the blank, given as
// arguments or on stdin.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// Analysis summarises a layout
type Analysis struct {
	Grid               engine.Grid     `json:"grid"`
	Blank              engine.Position `json:"blank"`
	BlankRowFromBottom int             `json:"blank_row_from_bottom"`
	Inversions         int             `json:"inversions"`
	Solvable           bool            `json:"solvable"`
	Solved             bool            `json:"solved"`
	Misplaced          int             `json:"misplaced"`
	Manhattan          int             `json:"manhattan"`
}

// Analyze computes every heuristic for g
func Analyze(g engine.Grid) Analysis {
	blank := g.FindBlank()
	return Analysis{
		Grid:               g,
		Blank:              blank,
		BlankRowFromBottom: engine.Size - blank.Row,
		Inversions:         engine.CountInversions(g),
		Solvable:           engine.IsSolvable(g),
		Solved:             g.IsSolved(),
		Misplaced:          engine.MisplacedTiles(g),
		Manhattan:          engine.TotalManhattan(g),
	}
}

func main() {
	if err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("analyze failed")
	}
}

func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "inspect a 15-puzzle layout",
		ArgsUsage: "[16 values, row-major, 0 = blank]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the analysis as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			layout := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(layout) == "" {
				data, err := io.ReadAll(in)
				if err != nil {
					return fmt.Errorf("read layout: %w", err)
				}
				layout = string(data)
			}

			g, err := engine.ParseGrid(layout)
			if err != nil {
				return err
			}

			a := Analyze(g)
			if cmd.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			printAnalysis(out, a)
			return nil
		},
	}
}

func printAnalysis(w io.Writer, a Analysis) {
	fmt.Fprint(w, a.Grid.String())
	fmt.Fprintf(w, "Blank: (%d, %d), row %d from bottom\n", a.Blank.Row, a.Blank.Col, a.BlankRowFromBottom)
	fmt.Fprintf(w, "Inversions: %d\n", a.Inversions)
	fmt.Fprintf(w, "Misplaced tiles: %d\n", a.Misplaced)
	fmt.Fprintf(w, "Manhattan distance: %d\n", a.Manhattan)

	switch {
	case a.Solved:
		fmt.Fprintln(w, "✅ Already solved")
	case a.Solvable:
		fmt.Fprintln(w, "✅ Solvable")
	default:
		fmt.Fprintln(w, "❌ Not solvable: inversion parity does not match the blank row")
	}
}
