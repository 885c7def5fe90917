package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// ErrInputClosed is returned when the input stream ends before the game does
var ErrInputClosed = errors.New("input closed")

// Result summarises a finished game
type Result struct {
	Solved bool
	Quit   bool
	Moves  int
}

// Game drives one puzzle from an input stream to an output stream
type Game struct {
	engine   *engine.GameEngine
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
	logger   zerolog.Logger
}

// Option configures a Game
type Option func(*Game)

// WithRenderer replaces the plain renderer
func WithRenderer(r *Renderer) Option {
	return func(g *Game) {
		g.renderer = r
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates a console game around eng
func NewGame(eng *engine.GameEngine, in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		engine:   eng,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: NewRenderer(false),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays until the puzzle is solved or the player quits. Running out of
// input is an error wrapping ErrInputClosed.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	msgs := g.engine.GetConfig().Messages
	result := &Result{}

	for {
		if err := ctx.Err(); err != nil {
			result.Moves = g.engine.GetMoveCount()
			return result, err
		}

		if err := g.renderer.Render(g.out, g.engine.GetGrid()); err != nil {
			return result, fmt.Errorf("render: %w", err)
		}

		if g.engine.IsSolved() {
			result.Solved = true
			result.Moves = g.engine.GetMoveCount()
			fmt.Fprintln(g.out, fmt.Sprintf(msgs.Victory, result.Moves))
			g.logger.Info().Int("moves", result.Moves).Msg("puzzle solved")
			return result, nil
		}

		fmt.Fprintln(g.out, msgs.Prompt)

		line, err := g.readLine()
		if err != nil {
			result.Moves = g.engine.GetMoveCount()
			return result, err
		}

		cmd := ParseCommand(line, g.engine.GetConfig().Keys)
		switch cmd.Kind {
		case CommandQuit:
			result.Quit = true
			result.Moves = g.engine.GetMoveCount()
			fmt.Fprintln(g.out, msgs.Quit)
			g.logger.Info().Int("moves", result.Moves).Msg("player quit")
			return result, nil

		case CommandMove:
			if !g.engine.Move(cmd.Direction) {
				fmt.Fprintln(g.out, msgs.InvalidMove)
				g.logger.Debug().Str("direction", cmd.Direction.String()).Msg("move rejected")
				continue
			}
			g.logger.Debug().
				Str("direction", cmd.Direction.String()).
				Int("moves", g.engine.GetMoveCount()).
				Msg("move applied")

		default:
			fmt.Fprintln(g.out, msgs.InvalidInput)
			g.logger.Debug().Str("input", line).Msg("unrecognised command")
		}
	}
}

// readLine returns the next line. A final line without a newline is still
// returned; only an empty read at end of stream is ErrInputClosed.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read input: %w", err)
}
